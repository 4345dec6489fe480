package models

// Note is a titled plain-text vault note.
type Note struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NoteEnvelope is the structured record stored in the key-value backend
// for every note. Ciphertext is base64 (standard encoding).
type NoteEnvelope struct {
	Title      string `json:"title"`
	Ciphertext string `json:"ciphertext"`
}
