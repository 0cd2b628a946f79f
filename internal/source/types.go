package source

// FileFlags encodes what normalization did to a file.
type FileFlags uint8 // метаданные

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска (тест, stdin)
	// FileHadBOM indicates a UTF-8 BOM was stripped.
	FileHadBOM
	// FileNormalizedCRLF indicates CRLF line endings were rewritten to LF.
	FileNormalizedCRLF
	// FileNormalizedNFC indicates the text was recomposed to Unicode NFC.
	FileNormalizedNFC
)

// File is a normalized script file ready to be split into blocks.
type File struct {
	Path    string
	Content []byte
	LineIdx []uint32 // byte offsets of every '\n'
	Hash    [32]byte // sha256 of the normalized content
	Flags   FileFlags
}
