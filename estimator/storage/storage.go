/*
 *     Copyright 2024 The Housing Estimator Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

//go:generate mockgen -destination mocks/storage_mock.go -source storage.go -package mocks

package storage

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/docker/go-units"
	"github.com/gocarina/gocsv"
	"github.com/gofrs/flock"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/atomic"

	logger "github.com/getadityaarya/india-housing-price-predictor/internal/dflog"
)

const (
	// EstimateFilePrefix is prefix of estimate file name.
	EstimateFilePrefix = "estimate"

	// CSVFileExt is extension of file name.
	CSVFileExt = "csv"

	// LockFileExt is extension of lock file name.
	LockFileExt = "lock"

	// backupTimeFormat is the timestamp format of backup file name.
	backupTimeFormat = "2006-01-02T15-04-05.000000000"
)

// Storage is the interface used for recording served estimates.
type Storage interface {
	// Create appends the record to the estimate file, the file is rotated when it exceeds max size.
	Create(Record) error

	// List returns records of backup files and the estimate file, oldest first.
	List() ([]Record, error)

	// Open opens backup files and the estimate file as one csv with header, oldest first.
	Open() (io.ReadCloser, error)

	// Size returns the size of the estimate file.
	Size() int64

	// Clear removes the estimate file and all backups.
	Clear() error
}

type storage struct {
	baseDir    string
	maxSize    int64
	maxBackups int

	// size of the estimate file.
	size *atomic.Int64

	// mu protects files of the process, lock protects files between processes.
	mu   sync.Mutex
	lock *flock.Flock
}

// New returns a new Storage instance.
func New(baseDir string, maxSize int64, maxBackups int) (Storage, error) {
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, err
	}

	s := &storage{
		baseDir:    baseDir,
		maxSize:    maxSize,
		maxBackups: maxBackups,
		size:       atomic.NewInt64(0),
		lock:       flock.New(filepath.Join(baseDir, fmt.Sprintf("%s.%s", EstimateFilePrefix, LockFileExt))),
	}

	if fi, err := os.Stat(s.estimateFilename()); err == nil {
		s.size.Store(fi.Size())
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	logger.Infof("storage of estimates in %s, max size %s, max backups %d", baseDir, units.HumanSize(float64(maxSize)), maxBackups)
	return s, nil
}

// Create appends the record to the estimate file, the file is rotated when it exceeds max size.
func (s *storage) Create(record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.lock.Lock(); err != nil {
		return err
	}
	defer s.lock.Unlock()

	if s.size.Load() >= s.maxSize {
		if err := s.rotate(); err != nil {
			return err
		}
	}

	file, err := os.OpenFile(s.estimateFilename(), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return err
	}
	defer file.Close()

	w := &countingWriter{w: file}
	if err := gocsv.MarshalWithoutHeaders([]Record{record}, w); err != nil {
		return err
	}

	s.size.Add(w.n)
	return nil
}

// List returns records of backup files and the estimate file, oldest first.
func (s *storage) List() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	backups, err := s.backups()
	if err != nil {
		return nil, err
	}

	var records []Record
	for _, filename := range append(backups, s.estimateFilename()) {
		rs, err := s.list(filename)
		if err != nil {
			return nil, err
		}

		records = append(records, rs...)
	}

	return records, nil
}

// Open opens backup files and the estimate file as one csv with header, oldest first.
func (s *storage) Open() (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	backups, err := s.backups()
	if err != nil {
		return nil, err
	}

	header, err := gocsv.MarshalBytes([]Record{})
	if err != nil {
		return nil, err
	}

	rc := &multiReadCloser{}
	readers := []io.Reader{bytes.NewReader(header)}
	for _, filename := range append(backups, s.estimateFilename()) {
		file, err := os.Open(filename)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}

			rc.Close() // nolint: errcheck
			return nil, err
		}

		rc.files = append(rc.files, file)
		readers = append(readers, file)
	}

	rc.Reader = io.MultiReader(readers...)
	return rc, nil
}

// Size returns the size of the estimate file.
func (s *storage) Size() int64 {
	return s.size.Load()
}

// Clear removes the estimate file and all backups.
func (s *storage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	backups, err := s.backups()
	if err != nil {
		return err
	}

	for _, filename := range append(backups, s.estimateFilename()) {
		if err := os.Remove(filename); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	s.size.Store(0)
	return nil
}

// list returns records of the file, a missing or empty file has no records.
func (s *storage) list(filename string) ([]Record, error) {
	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, err
	}
	defer file.Close()

	fi, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if fi.Size() == 0 {
		return nil, nil
	}

	var records []Record
	if err := gocsv.UnmarshalWithoutHeaders(file, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// rotate renames the estimate file to a backup and removes backups exceeding max backups.
func (s *storage) rotate() error {
	if err := os.Rename(s.estimateFilename(), s.backupFilename()); err != nil && !os.IsNotExist(err) {
		return err
	}
	s.size.Store(0)

	backups, err := s.backups()
	if err != nil {
		return err
	}

	if len(backups) <= s.maxBackups {
		return nil
	}

	for _, filename := range backups[:len(backups)-s.maxBackups] {
		logger.Infof("remove backup of estimates %s", filename)
		if err := os.Remove(filename); err != nil {
			return err
		}
	}

	return nil
}

// backups returns backup file names, oldest first.
func (s *storage) backups() ([]string, error) {
	filenames, err := filepath.Glob(filepath.Join(s.baseDir, fmt.Sprintf("%s_*.%s", EstimateFilePrefix, CSVFileExt)))
	if err != nil {
		return nil, err
	}

	sort.Strings(filenames)
	return filenames, nil
}

// estimateFilename generates estimate file name.
func (s *storage) estimateFilename() string {
	return filepath.Join(s.baseDir, fmt.Sprintf("%s.%s", EstimateFilePrefix, CSVFileExt))
}

// backupFilename generates backup file name of estimate file.
func (s *storage) backupFilename() string {
	timestamp := strings.ReplaceAll(time.Now().UTC().Format(backupTimeFormat), ".", "-")
	return filepath.Join(s.baseDir, fmt.Sprintf("%s_%s.%s", EstimateFilePrefix, timestamp, CSVFileExt))
}

type multiReadCloser struct {
	io.Reader
	files []*os.File
}

func (rc *multiReadCloser) Close() error {
	var errs error
	for _, file := range rc.files {
		if err := file.Close(); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	return errs
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
