package classifile

import (
	"bytes"
	"io"
	"sync"

	"github.com/projectdiscovery/utils/dedupe"
)

// DedupingWriter wraps an io.Writer with transparent line deduplication.
// Seeding it with the known filenames keeps already-existing names out of a
// generated candidate list.
type DedupingWriter struct {
	writer    io.Writer
	inputCh   chan string
	blacklist map[string]bool
	wg        sync.WaitGroup
	count     int
	countMu   sync.Mutex
	closed    bool
	buffer    []byte
}

// NewDedupingWriter creates a DedupingWriter; seed entries are skipped on output.
func NewDedupingWriter(w io.Writer, seed ...string) *DedupingWriter {
	blacklist := make(map[string]bool, len(seed))
	for _, item := range seed {
		blacklist[item] = true
	}

	inputCh := make(chan string, 100)
	dw := &DedupingWriter{
		writer:    w,
		inputCh:   inputCh,
		blacklist: blacklist,
		buffer:    make([]byte, 0),
	}

	dw.wg.Add(1)
	go dw.processDeduped(inputCh)

	return dw
}

// processDeduped drains the dedupe backend and writes unique lines to the
// underlying writer.
func (dw *DedupingWriter) processDeduped(inputCh chan string) {
	defer dw.wg.Done()

	d := dedupe.NewDedupe(inputCh, 1024*1024)
	d.Drain()
	outputCh := d.GetResults()

	for value := range outputCh {
		if value == "" || dw.blacklist[value] {
			continue
		}
		if _, err := dw.writer.Write([]byte(value + "\n")); err != nil {
			continue
		}
		dw.countMu.Lock()
		dw.count++
		dw.countMu.Unlock()
	}
}

// Write implements io.Writer, buffering until complete lines are available.
func (dw *DedupingWriter) Write(p []byte) (int, error) {
	if dw.closed {
		return 0, io.ErrClosedPipe
	}

	originalLen := len(p)
	dw.buffer = append(dw.buffer, p...)

	for {
		idx := bytes.IndexByte(dw.buffer, '\n')
		if idx == -1 {
			break
		}
		dw.inputCh <- string(dw.buffer[:idx])
		dw.buffer = dw.buffer[idx+1:]
	}

	return originalLen, nil
}

// Close flushes any remaining data and waits for dedupe processing to finish.
func (dw *DedupingWriter) Close() error {
	if dw.closed {
		return nil
	}
	dw.closed = true

	if len(dw.buffer) > 0 {
		dw.inputCh <- string(dw.buffer)
	}
	close(dw.inputCh)
	dw.wg.Wait()

	return nil
}

// Count returns the number of unique lines written.
func (dw *DedupingWriter) Count() int {
	dw.countMu.Lock()
	defer dw.countMu.Unlock()
	return dw.count
}
