package serialization

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/born-ml/mega/internal/tensor"
)

// Archive is a decoded .mega file.
type Archive struct {
	Header  Header
	Tensors map[string]*tensor.Tensor
}

// Names returns tensor names in file order.
func (a *Archive) Names() []string {
	names := make([]string, len(a.Header.Tensors))
	for i, m := range a.Header.Tensors {
		names[i] = m.Name
	}
	return names
}

// Read decodes one archive from r, verifying the checksum and every header entry.
func Read(r io.Reader) (*Archive, error) {
	fixed := make([]byte, FixedHeaderSize)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return nil, fmt.Errorf("failed to read fixed header: %w", err)
	}
	if string(fixed[0:4]) != MagicBytes {
		return nil, ErrInvalidMagic
	}
	if version := binary.LittleEndian.Uint32(fixed[4:8]); version != FormatVersion {
		return nil, fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, version, FormatVersion)
	}
	headerSize := binary.LittleEndian.Uint64(fixed[16:24])
	dataSize := binary.LittleEndian.Uint64(fixed[24:32])
	var stored [ChecksumSize]byte
	copy(stored[:], fixed[ChecksumOffset:ChecksumOffset+ChecksumSize])

	if headerSize > MaxHeaderSize {
		return nil, ErrHeaderTooLarge
	}
	if dataSize > math.MaxInt64 {
		return nil, fmt.Errorf("%w: data size %d", ErrTruncated, dataSize)
	}

	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return nil, fmt.Errorf("failed to read header JSON: %w", err)
	}
	var header Header
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return nil, fmt.Errorf("failed to parse header JSON: %w", err)
	}

	pad := padding(int64(FixedHeaderSize) + int64(headerSize)) //nolint:gosec // G115: bounded by MaxHeaderSize
	if _, err := io.CopyN(io.Discard, r, pad); err != nil {
		return nil, fmt.Errorf("failed to skip padding: %w", err)
	}

	// LimitReader keeps a forged data size from forcing a large allocation.
	data, err := io.ReadAll(io.LimitReader(r, int64(dataSize))) //nolint:gosec // G115: checked above
	if err != nil {
		return nil, fmt.Errorf("failed to read tensor data: %w", err)
	}
	if uint64(len(data)) != dataSize {
		return nil, fmt.Errorf("%w: got %d of %d bytes", ErrTruncated, len(data), dataSize)
	}
	if err := ValidateChecksum(ComputeChecksum(data), stored); err != nil {
		return nil, err
	}
	if err := ValidateHeader(&header, int64(len(data))); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	archive := &Archive{
		Header:  header,
		Tensors: make(map[string]*tensor.Tensor, len(header.Tensors)),
	}
	for _, m := range header.Tensors {
		dt, _ := parseDType(m.DType) // checked by ValidateHeader
		t, err := tensor.FromBytes(tensor.Shape(m.Shape), dt, data[m.Offset:m.Offset+m.Size])
		if err != nil {
			return nil, fmt.Errorf("tensor %q: %w", m.Name, err)
		}
		archive.Tensors[m.Name] = t
	}
	return archive, nil
}

// Load reads the archive stored at path.
func Load(path string) (*Archive, error) {
	//nolint:gosec // G304: path is caller supplied by design of a load API
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()
	return Read(bufio.NewReader(file))
}
