package dump

import (
	"io"
	"sync"
)

//Frames are independent of one another, so the trajectory can be
//decoded in parallel: the stream is partitioned at the fixed stride of
//natoms+9 lines per frame, and each frame is parsed by whichever worker
//picks it up, writing into its own slice of the output. The only
//synchronization is the barrier at the end; the result is
//indistinguishable from a sequential decode.

type concJob struct {
	idx   int //output frame index; -1 for frames that are validated but dropped
	lines []string
}

type concResult struct {
	idx int
	buf []float32
}

//parseFrameLines parses one frame given all its raw lines, checking the
//declared atom count against the first frame's.
func parseFrameLines(lines []string, expect int, buf []float32, filename string) error {
	natoms, _, _, err := parseHeader(lines[:HeaderLines], filename)
	if err != nil {
		return err
	}
	if natoms != expect {
		return Error{InconsistentFrames, filename, []string{"parseFrameLines"}, true}
	}
	for _, line := range lines[HeaderLines:] {
		if err := parseAtomLine(line, natoms, buf, filename); err != nil {
			return err
		}
	}
	return nil
}

//decodeConc decodes every frame after the already-read first one on
//workers goroutines. Skipped frames are still dispatched so they get
//the same validation as in the sequential path, but no storage.
func (D *DumpR) decodeConc(first *Frame, skip, workers int) ([]float32, int, error) {
	natoms := D.natoms
	stride := natoms + HeaderLines
	jobs := make(chan concJob, workers)
	results := make(chan concResult, workers)
	errc := make(chan error, workers+1)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				var buf []float32
				if job.idx >= 0 {
					buf = make([]float32, natoms*4)
				}
				if err := parseFrameLines(job.lines, natoms, buf, D.filename); err != nil {
					select {
					case errc <- errDecorate(err, "decodeConc"):
					default: //an error is already pending; first one wins
					}
					continue
				}
				if job.idx >= 0 {
					results <- concResult{job.idx, buf}
				}
			}
		}()
	}
	//collector: the only goroutine touching the frame list
	framesDone := make(chan [][]float32)
	go func() {
		var frames [][]float32
		if skip == 0 {
			buf := make([]float32, len(first.Data))
			copy(buf, first.Data)
			frames = append(frames, buf)
		}
		for r := range results {
			for r.idx >= len(frames) {
				frames = append(frames, nil)
			}
			frames[r.idx] = r.buf
		}
		framesDone <- frames
	}()
	//the reader: partition the stream at the fixed stride
	var readErr error
reading:
	for i := 1; ; i++ {
		lines := make([]string, stride)
		for j := 0; j < stride; j++ {
			line, err := D.readLine()
			if err != nil {
				if err == io.EOF && j == 0 {
					break reading //normal end of trajectory
				}
				which := TruncatedFrame
				if j < HeaderLines {
					which = TruncatedHeader
				}
				readErr = Error{which + ": " + err.Error(), D.filename, []string{"decodeConc"}, true}
				break reading
			}
			lines[j] = line
		}
		idx := i - skip
		if i < skip {
			idx = -1
		}
		select {
		case err := <-errc:
			readErr = err
			break reading
		case jobs <- concJob{idx, lines}:
		}
	}
	close(jobs)
	wg.Wait()
	close(results)
	frames := <-framesDone
	if readErr == nil {
		select {
		case readErr = <-errc:
		default:
		}
	}
	if readErr != nil {
		return nil, 0, readErr
	}
	data := make([]float32, 0, len(frames)*natoms*4)
	for _, buf := range frames {
		data = append(data, buf...)
	}
	return data, len(frames), nil
}
