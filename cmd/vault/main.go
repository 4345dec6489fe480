// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command vault is a command line front end for the encrypted document and
// note vault.
package main

import (
	"os"

	"github.com/MKhiriev/go-doc-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	root := newRootCmd(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
