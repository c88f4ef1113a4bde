// Package replay reads and writes a length-prefixed binary log of scan
// records, so a recorded session (or a synthetic one built for testing)
// can be replayed into a slamcore engine deterministically, without the
// engine itself ever touching a file or a serial port. The format follows
// the recorder/replayer convention used elsewhere in this codebase
// (internal/lidar/recorder): a 4-byte little-endian length prefix per
// record, record payload as JSON.
package replay

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"

	"github.com/coreslam/slamcore"
)

// Record is one logged revolution: the raw scan distances plus the
// odometry-derived pose change that preceded it, exactly the arguments
// slam.SLAM.Update needs.
type Record struct {
	TimestampUS   int64           `json:"timestamp_us"`
	ScansMM       []float64       `json:"scans_mm"`
	PoseChange    slam.PoseChange `json:"pose_change"`
	ScanAnglesDeg []float64       `json:"scan_angles_deg,omitempty"`
}

// Writer appends Records to an underlying io.Writer as length-prefixed
// JSON, one record per Write call.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w for recording.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write appends one record to the log.
func (rw *Writer) Write(rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("replay: marshal record: %w", err)
	}
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(data)))
	if _, err := rw.w.Write(lenBuf[:]); err != nil {
		return fmt.Errorf("replay: write record length: %w", err)
	}
	if _, err := rw.w.Write(data); err != nil {
		return fmt.Errorf("replay: write record data: %w", err)
	}
	return nil
}

// Reader reads Records back from a log written by Writer, one at a time.
type Reader struct {
	r io.Reader
}

// NewReader wraps r for replay.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Next reads the next record from the log, returning io.EOF once the log
// is exhausted (checked with errors.Is by the caller).
func (rr *Reader) Next() (Record, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(rr.r, lenBuf[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return Record{}, fmt.Errorf("replay: truncated record length")
		}
		return Record{}, err
	}
	n := binary.LittleEndian.Uint32(lenBuf[:])
	data := make([]byte, n)
	if _, err := io.ReadFull(rr.r, data); err != nil {
		return Record{}, fmt.Errorf("replay: truncated record body: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("replay: unmarshal record: %w", err)
	}
	return rec, nil
}

// Feed reads every record from r in order and calls engine.Update (or
// engine.UpdateWithOptions, if the record carries a per-beam angle
// override) for each one, stopping at the first error — including a clean
// io.EOF, which Feed swallows and reports as a nil return, since "ran out
// of recorded frames" is success for a replay loop.
func Feed(r io.Reader, engine *slam.SLAM) (int, error) {
	reader := NewReader(r)
	count := 0
	for {
		rec, err := reader.Next()
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, err
		}

		if rec.ScanAnglesDeg != nil {
			opts := slam.NewUpdateOptions(rec.PoseChange)
			opts.ScanAnglesDeg = rec.ScanAnglesDeg
			if err := engine.UpdateWithOptions(rec.ScansMM, opts); err != nil {
				return count, fmt.Errorf("replay: update at record %d: %w", count, err)
			}
		} else if err := engine.Update(rec.ScansMM, rec.PoseChange); err != nil {
			return count, fmt.Errorf("replay: update at record %d: %w", count, err)
		}

		count++
	}
}
