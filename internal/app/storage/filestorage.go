package storage

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"os"
)

// ErrFileReadCompletely signals that the journal replay reached the end of file.
var ErrFileReadCompletely = errors.New("file has been read completely")

// JournalRow is a single append-only record of the file journal.
type JournalRow struct {
	UUID  int32  `json:"uuid"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// FileJournal is an append-only JSON-lines file the in-memory store replays
// on startup. It is a warm-restart aid, not a queryable store.
type FileJournal struct {
	path     string
	file     *os.File
	reader   *bufio.Reader
	writer   *bufio.Writer
	lastUUID int32
}

// NewFileJournal creates a journal over the given path. The file is opened
// lazily on the first read or write.
func NewFileJournal(path string) *FileJournal {
	return &FileJournal{path: path}
}

func (f *FileJournal) openAppend() error {
	var err error
	f.file, err = os.OpenFile(f.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	f.writer = bufio.NewWriter(f.file)
	return nil
}

func (f *FileJournal) openReadOnly() error {
	var err error
	f.file, err = os.OpenFile(f.path, os.O_RDONLY|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	f.reader = bufio.NewReader(f.file)
	return nil
}

// Close flushes pending writes and closes the file.
func (f *FileJournal) Close() error {
	if f.file == nil {
		return nil
	}
	if f.writer != nil {
		if err := f.writer.Flush(); err != nil {
			return err
		}
	}
	fileCloseErr := f.file.Close()
	f.file = nil
	f.writer = nil
	f.reader = nil
	return fileCloseErr
}

// Append writes one key-value row and flushes it to disk.
func (f *FileJournal) Append(key string, value string) error {
	if f.writer == nil {
		if f.file != nil {
			// The journal was left in replay mode; reopen for appending.
			if err := f.Close(); err != nil {
				return err
			}
		}
		if err := f.openAppend(); err != nil {
			return err
		}
	}
	row := JournalRow{
		UUID:  f.lastUUID + 1,
		Key:   key,
		Value: value,
	}
	data, err := json.Marshal(&row)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if _, err = f.writer.Write(data); err != nil {
		return err
	}
	f.lastUUID++
	return f.writer.Flush()
}

// ReadNextLine returns the next journal row, or ErrFileReadCompletely once
// the file is exhausted (the file is closed at that point).
func (f *FileJournal) ReadNextLine() (*JournalRow, error) {
	if f.reader == nil {
		if err := f.openReadOnly(); err != nil {
			return nil, err
		}
	}
	data, err := f.reader.ReadBytes('\n')
	if err != nil {
		if err == io.EOF {
			closeErr := f.Close()
			if closeErr != nil {
				return nil, closeErr
			}
			return nil, ErrFileReadCompletely
		}
		return nil, err
	}
	row := JournalRow{}
	if err = json.Unmarshal(data, &row); err != nil {
		return nil, err
	}
	f.lastUUID = row.UUID

	return &row, nil
}
