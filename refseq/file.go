package refseq

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// faiEntry is one line of a samtools-style `.fai` index: contig name,
// length, byte offset of the first base, bases per line, bytes per line.
type faiEntry struct {
	length    int
	offset    int64
	lineBases int
	lineBytes int
}

// FileProvider reads sequence from a FASTA file using a samtools `.fai`
// index loaded alongside it. It is a stub: enough to satisfy Provider for a
// local file, not a production-grade indexer (no index-building, no
// compressed FASTA support).
type FileProvider struct {
	fastaPath string
	index     map[string]faiEntry
}

// NewFileProvider loads the `.fai` index next to fastaPath (fastaPath+".fai")
// and returns a Provider backed by it.
func NewFileProvider(fastaPath string) (*FileProvider, error) {
	f, err := os.Open(fastaPath + ".fai")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	index := make(map[string]faiEntry)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) != 5 {
			continue
		}
		length, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}
		offset, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			continue
		}
		lineBases, err := strconv.Atoi(fields[3])
		if err != nil {
			continue
		}
		lineBytes, err := strconv.Atoi(fields[4])
		if err != nil {
			continue
		}
		index[fields[0]] = faiEntry{length: length, offset: offset, lineBases: lineBases, lineBytes: lineBytes}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &FileProvider{fastaPath: fastaPath, index: index}, nil
}

// Sequence implements Provider by seeking into the FASTA file using the
// loaded index's line-wrapping geometry.
func (p *FileProvider) Sequence(contig string, start, length int) string {
	entry, ok := p.index[contig]
	if !ok || start < 0 || length <= 0 || start+length > entry.length {
		return ""
	}

	f, err := os.Open(p.fastaPath)
	if err != nil {
		return ""
	}
	defer f.Close()

	newlinesBefore := start / entry.lineBases
	seekTo := entry.offset + int64(start) + int64(newlinesBefore)
	if _, err := f.Seek(seekTo, 0); err != nil {
		return ""
	}

	raw := make([]byte, length+(length/entry.lineBases)+2)
	n, _ := f.Read(raw)
	raw = raw[:n]

	var out strings.Builder
	for _, b := range raw {
		if b == '\n' || b == '\r' {
			continue
		}
		out.WriteByte(b)
		if out.Len() == length {
			break
		}
	}
	return out.String()
}
