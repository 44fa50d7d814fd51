package calc

import (
	"bufio"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	mlpeg "github.com/ddmms/mlpeg"
)

//TrajWriter writes a multi-frame extended XYZ trajectory. If the file name
//ends in ".zst" the stream is zstd-compressed; relaxation trajectories
//compress very well, as consecutive frames differ only in the strain.
type TrajWriter struct {
	f         *os.File
	enc       *zstd.Encoder
	w         *bufio.Writer
	filename  string
	writeable bool
	frames    int
}

//NewTrajWriter creates (or truncates) the trajectory file filename.
func NewTrajWriter(filename string) (*TrajWriter, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, Error{message: err.Error(), deco: []string{"NewTrajWriter"}, critical: true}
	}
	T := &TrajWriter{f: f, filename: filename, writeable: true}
	if strings.HasSuffix(filename, ".zst") {
		T.enc, err = zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, Error{message: err.Error(), deco: []string{"NewTrajWriter"}, critical: true}
		}
		T.w = bufio.NewWriter(T.enc)
	} else {
		T.w = bufio.NewWriter(f)
	}
	return T, nil
}

//WNext appends one frame to the trajectory.
func (T *TrajWriter) WNext(st *mlpeg.Structure) error {
	if !T.writeable {
		return Error{message: "trajectory " + T.filename + " not open for writing", deco: []string{"WNext"}, critical: true}
	}
	if st == nil {
		return Error{message: "given nil structure", deco: []string{"WNext"}, critical: true}
	}
	if err := mlpeg.XYZWriteFrame(T.w, st); err != nil {
		return errDecorate(err, "WNext")
	}
	T.frames++
	return nil
}

//Len returns the number of frames written so far.
func (T *TrajWriter) Len() int {
	return T.frames
}

//Close flushes and closes the trajectory, and marks it as unwriteable.
func (T *TrajWriter) Close() {
	if T == nil || !T.writeable {
		return
	}
	T.w.Flush()
	if T.enc != nil {
		T.enc.Close()
	}
	T.f.Close()
	T.writeable = false
}
