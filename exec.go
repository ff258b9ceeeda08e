package painterly

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/esimov/painterly/utils"
	"golang.org/x/term"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// isTerminal reports whether the file descriptor is attached to a terminal.
var isTerminal = term.IsTerminal

// srcExtensions lists the source image file types picked up from a directory.
var srcExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif", ".tif", ".tiff", ".webp"}

// Ops describes a command line painting job. The source can be an image file,
// an image URL, a directory of images or the pipe name for stdin.
// The destination is an image file, a directory or the pipe name for stdout.
type Ops struct {
	Src, Dst, PipeName string
	Workers            int
	Style              Style

	// Seed makes the renders reproducible when Seeded is set.
	Seed   uint64
	Seeded bool

	// Debug writes next to every output an image with the uncovered pixels highlighted.
	Debug bool

	// Spinner, when not nil, is shown while a single image is painted.
	Spinner *utils.Spinner
}

// result holds the outcome of painting a single image of a directory.
type result struct {
	path string
	err  error
}

// Execute runs the painting job. The context cancels the directory walk;
// the image being painted is finished first.
func (op *Ops) Execute(ctx context.Context) error {
	if err := op.Style.Validate(); err != nil {
		return err
	}
	now := time.Now()

	if utils.IsValidUrl(op.Src) {
		src, err := utils.DownloadImage(ctx, op.Src, "")
		if err != nil {
			return &LoadError{Path: op.Src, Err: err}
		}
		defer os.Remove(src.Name())
		defer src.Close()

		if err := op.paintFile(src.Name(), op.Dst); err != nil {
			return err
		}
		Logger().Info("image painted", "src", op.Src, "elapsed", utils.FormatTime(time.Since(now)))
		return nil
	}

	if op.Src == op.PipeName {
		if isTerminal(int(os.Stdin.Fd())) {
			return errors.New("`-` should be used with a pipe for stdin")
		}
		return op.paintFile(op.PipeName, op.Dst)
	}

	info, err := os.Stat(op.Src)
	if err != nil {
		return &LoadError{Path: op.Src, Err: err}
	}

	if !info.IsDir() {
		if err := op.paintFile(op.Src, op.Dst); err != nil {
			return err
		}
		Logger().Info("image painted", "src", op.Src, "elapsed", utils.FormatTime(time.Since(now)))
		return nil
	}

	err = op.paintDir(ctx)
	Logger().Info("directory painted", "src", op.Src, "elapsed", utils.FormatTime(time.Since(now)))
	return err
}

// paintDir paints every supported image found in the source directory tree
// concurrently. The outputs are saved as png files into the destination directory.
func (op *Ops) paintDir(ctx context.Context) error {
	if err := os.MkdirAll(op.Dst, 0o755); err != nil {
		return fmt.Errorf("unable to create the destination directory: %w", err)
	}

	workers := op.Workers
	if workers <= 0 || workers > maxWorkers {
		workers = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	paths, errc := walkDir(ctx, op.Src, op.Dst, srcExtensions)
	results := make(chan result)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			op.consumer(ctx, results, paths)
		}()
	}

	// Close the channel after the values are consumed.
	go func() {
		defer close(results)
		wg.Wait()
	}()

	var errs []error
	for res := range results {
		if res.err != nil {
			Logger().Error("could not paint the image", "path", res.path, "error", res.err)
			errs = append(errs, res.err)
			continue
		}
		Logger().Info("image painted", "path", res.path)
	}
	if err := <-errc; err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// consumer paints the images received on the paths channel.
func (op *Ops) consumer(ctx context.Context, results chan<- result, paths <-chan string) {
	for src := range paths {
		name := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)) + ".png"
		err := op.paint(src, filepath.Join(op.Dst, name), func(string) {})

		select {
		case <-ctx.Done():
			return
		case results <- result{path: src, err: err}:
		}
	}
}

// paintFile paints a single image, showing the progress indicator if any.
func (op *Ops) paintFile(in, out string) error {
	if out == op.PipeName {
		if isTerminal(int(os.Stdout.Fd())) {
			return errors.New("`-` should be used with a pipe for stdout")
		}
	} else if _, err := FormatFromFilename(out); err != nil {
		return &SaveError{Path: out, Err: err}
	}
	if op.Spinner == nil {
		return op.paint(in, out, func(string) {})
	}

	op.Spinner.Start()
	err := op.paint(in, out, op.Spinner.SetStage)
	if err != nil {
		op.Spinner.StopMsg = fmt.Sprintf("%s %s\n",
			utils.DecorateText("painting the image failed...", utils.DefaultMessage),
			utils.DecorateText("✘", utils.ErrorMessage),
		)
	} else if out != op.PipeName {
		op.Spinner.StopMsg = fmt.Sprintf("%s %s\n",
			utils.DecorateText("the image has been saved as:", utils.DefaultMessage),
			utils.DecorateText(filepath.Base(out), utils.SuccessMessage),
		)
	}
	op.Spinner.Stop()

	return err
}

// paint loads, renders and saves one image. The pipe name reads from stdin
// and writes to stdout. The stage callback is told which step is running.
func (op *Ops) paint(in, out string, stage func(string)) error {
	doc := op.newDocument()

	stage("is loading the image...")

	var err error
	if in == op.PipeName {
		err = doc.Decode(os.Stdin)
	} else {
		err = doc.Load(in)
	}
	if err != nil {
		return err
	}

	stage("is painting the image...")
	if err := doc.Render(); err != nil {
		return err
	}

	stage("is saving the painting...")

	if out == op.PipeName {
		return doc.Encode(os.Stdout, PNG)
	}
	if err := doc.Save(out); err != nil {
		return err
	}

	if op.Debug {
		path := strings.TrimSuffix(out, filepath.Ext(out)) + "_coverage.png"
		if err := saveImg(path, doc.DebugImage()); err != nil {
			return &SaveError{Path: path, Err: err}
		}
	}
	return nil
}

func (op *Ops) newDocument() *Document {
	opts := []Option{WithStyle(op.Style)}
	if op.Seeded {
		opts = append(opts, WithSeed(op.Seed))
	}
	return NewDocument(opts...)
}

// walkDir starts a new goroutine to walk the specified directory tree
// recursively and sends the path of each supported image file to a new channel.
// The skip directory, where the outputs are written, is not visited.
// It finishes when the context is cancelled.
func walkDir(ctx context.Context, src, skip string, srcExts []string) (<-chan string, <-chan error) {
	pathChan := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		// Close the paths channel after the walk returns.
		defer close(pathChan)

		errChan <- filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() && path != src && filepath.Clean(path) == filepath.Clean(skip) {
				return filepath.SkipDir
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if !utils.Contains(srcExts, strings.ToLower(filepath.Ext(d.Name()))) {
				return nil
			}

			select {
			case <-ctx.Done():
				return errors.New("directory walk cancelled")
			case pathChan <- path:
			}
			return nil
		})
	}()
	return pathChan, errChan
}
