package calc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"gonum.org/v1/gonum/mat"

	mlpeg "github.com/ddmms/mlpeg"
)

//CommandCalc obtains energies, forces and stresses from an external MLIP
//program. For each evaluation it writes the structure as extended XYZ into a
//scratch directory, runs the configured command with the input file path
//appended to its arguments, and parses the JSON the program must print to
//its standard output:
//
//	{"energy": -12.3, "forces": [[fx, fy, fz], ...], "stress": [xx, yy, zz, yz, xz, xy]}
//
//with energy in eV, forces in eV/Å and stress in eV/Å³.
type CommandCalc struct {
	command string
	args    []string
	scratch string
}

//NewCommandCalc returns a driver for the given command. If scratch is an
//empty string, the input files go to the system temporary directory.
func NewCommandCalc(command string, args []string, scratch string) *CommandCalc {
	if scratch == "" {
		scratch = os.TempDir()
	}
	return &CommandCalc{command: command, args: args, scratch: scratch}
}

//Command returns the configured command name.
func (O *CommandCalc) Command() string {
	return O.command
}

//Clone returns a shallow copy of the calculator.
func (O *CommandCalc) Clone() Calculator {
	no := *O
	return &no
}

//cmdReply is the JSON printed by the external program.
type cmdReply struct {
	Energy *float64    `json:"energy"`
	Forces [][]float64 `json:"forces"`
	Stress []float64   `json:"stress"`
}

//Potential writes the input, runs the external program, and parses its
//reply. Anything the program prints to stderr ends up in the returned error.
func (O *CommandCalc) Potential(st *mlpeg.Structure) (*Result, error) {
	f, err := os.CreateTemp(O.scratch, "mlpeg-*.extxyz")
	if err != nil {
		return nil, Error{message: err.Error(), deco: []string{"CommandCalc.Potential"}, critical: true}
	}
	inputname := f.Name()
	defer os.Remove(inputname)
	w := bufio.NewWriter(f)
	if err := mlpeg.XYZWriteFrame(w, st); err != nil {
		f.Close()
		return nil, errDecorate(err, "CommandCalc.Potential")
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return nil, Error{message: err.Error(), deco: []string{"CommandCalc.Potential"}, critical: true}
	}
	f.Close()
	cmd := exec.Command(O.command, append(append([]string{}, O.args...), inputname)...)
	cmd.Dir = filepath.Dir(inputname)
	out, err := cmd.Output()
	if err != nil {
		msg := err.Error()
		if ee, ok := err.(*exec.ExitError); ok && len(ee.Stderr) > 0 {
			msg = fmt.Sprintf("%s: %s", msg, ee.Stderr)
		}
		return nil, Error{message: fmt.Sprintf("%s failed: %s", O.command, msg), deco: []string{"CommandCalc.Potential"}, critical: true}
	}
	var rep cmdReply
	if err := json.Unmarshal(out, &rep); err != nil {
		return nil, Error{message: fmt.Sprintf("can't parse %s output: %s", O.command, err.Error()), deco: []string{"CommandCalc.Potential"}, critical: true}
	}
	if rep.Energy == nil || len(rep.Forces) != st.Len() || len(rep.Stress) != 6 {
		return nil, Error{message: fmt.Sprintf("incomplete %s output", O.command), deco: []string{"CommandCalc.Potential"}, critical: true}
	}
	forces := mat.NewDense(st.Len(), 3, nil)
	for i, row := range rep.Forces {
		if len(row) != 3 {
			return nil, Error{message: fmt.Sprintf("malformed force row %d in %s output", i, O.command), deco: []string{"CommandCalc.Potential"}, critical: true}
		}
		forces.SetRow(i, row)
	}
	ret := &Result{Energy: *rep.Energy, Forces: forces}
	copy(ret.Stress[:], rep.Stress)
	return ret, nil
}
