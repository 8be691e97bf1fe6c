package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
	FileTranscoded
)

// File captures metadata and normalized content for a single subtitle file.
//
// Offsets in diagnostics are counted in display-width columns, not bytes:
// a span must select on screen exactly the text it covers, even when lines
// contain wide or combining runes. LineIdx (bytes) serves line extraction,
// WidthIdx (columns) serves span resolution.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	// LineIdx хранит байтовые позиции всех '\n' в Content.
	LineIdx []uint32
	// WidthIdx хранит display-width смещение начала каждой строки.
	WidthIdx []uint32
	// Width is the total display width of Content, newlines counted as 1.
	Width uint32
	Flags FileFlags
}

// LineCol represents a human-readable position in a source file.
// Col is a display column, 1-based.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
