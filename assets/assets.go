// Package assets carries the face records built into firmware images.
package assets

import _ "embed"

// Faces is a JSON-lines face file in the same format as FACE_FILE_PATH.
//
//go:embed faces.jsonl
var Faces []byte
