package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	// The zero value is NoFileID, the "no source" sentinel.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

// NoFileID marks the absence of a source file. A FileSet never hands it out.
const NoFileID FileID = 0

// IsValid reports whether the id refers to an actual file.
func (id FileID) IsValid() bool { return id != NoFileID }

const (
	// FileVirtual indicates the file is not backed by disk (generated
	// during expansion, stdin, or test input).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
	FileNormalizedNFC
)

// File captures metadata and content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // byte offsets of '\n'
	Hash    [32]byte
	Flags   FileFlags
}

// IsVirtual reports whether the file was materialized from memory rather
// than loaded from disk. Callers must not cache the answer; unit-level
// policies re-check it on every access.
func (f *File) IsVirtual() bool {
	return f != nil && f.Flags&FileVirtual != 0
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}

// LineColAt converts a byte offset into a 1-based line/column pair.
func (f *File) LineColAt(offset uint32) LineCol {
	return toLineCol(f.LineIdx, offset)
}
