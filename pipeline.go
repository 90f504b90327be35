package snespal

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const convertWorkers = 10

func findPalettes(ctx context.Context, base, ext string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories
			if info.Name()[0] == '.' && file != base {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Ignore anything that isn't a normal file
			if !info.Mode().IsRegular() {
				return nil
			}

			if e := filepath.Ext(file); e == ext || !Supported(e) {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func convertWorker(ctx context.Context, in <-chan string, ext string, logger logrus.FieldLogger) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			t, err := Load(file)
			if err != nil {
				errc <- err
				return
			}

			dst := strings.TrimSuffix(file, filepath.Ext(file)) + ext
			if err := Save(t, dst); err != nil {
				errc <- err
				return
			}
			logger.WithFields(logrus.Fields{"src": file, "dst": dst}).Info("converted palette")
		}
	}()
	return errc, nil
}

// waitForPipeline returns the first error from any stage, or nil once every
// stage has finished cleanly.
func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

// mergeErrors fans the error channels of each stage into one channel that is
// closed after all of them are.
func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Convert walks the directory tree at path and writes a copy of every palette
// file in the format named by ext, next to the original.
func Convert(ctx context.Context, path, ext string, logger logrus.FieldLogger) error {
	if !Supported(ext) {
		return ErrUnsupportedExtension
	}

	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	logger = newLogger(logger, "convert")

	var errcList []<-chan error

	files, errc, err := findPalettes(ctx, dir, ext)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < convertWorkers; i++ {
		errc, err := convertWorker(ctx, files, ext, logger)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}
