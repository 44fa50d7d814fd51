/*
 * xyz.go, part of mlpeg.
 *
 * Copyright 2024 The mlpeg developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package mlpeg

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//Extended XYZ reading

//maxXYZAtoms bounds the atom count a frame may declare, so a corrupt count
//line can't ask for an absurd allocation.
const maxXYZAtoms = 100000000

//XYZRead reads the first frame of the extended XYZ file xyzname and returns
//it as a Structure. The name of the structure is taken from the file name,
//without directory or extension. The comment line must carry a Lattice
//entry, as only periodic structures make sense for this benchmark.
func XYZRead(xyzname string) (*Structure, error) {
	f, err := os.Open(xyzname)
	if err != nil {
		return nil, Error{message: err.Error(), filename: xyzname, deco: []string{"XYZRead"}, critical: true}
	}
	defer f.Close()
	st, err := XYZReadFrame(bufio.NewReader(f))
	if err == io.EOF {
		return nil, Error{message: "empty XYZ file", filename: xyzname, deco: []string{"XYZRead"}, critical: true}
	}
	if err != nil {
		return nil, errDecorate(err, "XYZRead "+xyzname)
	}
	name := filepath.Base(xyzname)
	st.Name = strings.TrimSuffix(name, filepath.Ext(name))
	return st, nil
}

//XYZReadFrame reads one frame in extended XYZ format from r. It returns
//io.EOF (undecorated) if no frame is left, so trajectory readers can tell
//a normal termination from a parsing problem.
func XYZReadFrame(r *bufio.Reader) (*Structure, error) {
	line, err := r.ReadString('\n')
	if err == io.EOF && strings.TrimSpace(line) == "" {
		return nil, io.EOF
	}
	if err != nil && err != io.EOF {
		return nil, Error{message: "reading XYZ frame: " + err.Error(), deco: []string{"XYZReadFrame"}, critical: true}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return nil, Error{message: "ill formatted XYZ file: " + err.Error(), deco: []string{"XYZReadFrame"}, critical: true}
	}
	if natoms <= 0 || natoms > maxXYZAtoms {
		return nil, Error{message: fmt.Sprintf("ill formatted XYZ file: declares %d atoms", natoms), deco: []string{"XYZReadFrame"}, critical: true}
	}
	comment, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, Error{message: "ill formatted XYZ file: missing comment line", deco: []string{"XYZReadFrame"}, critical: true}
	}
	fields := xyzCommentFields(comment)
	lattice, ok := fields["Lattice"]
	if !ok {
		lattice, ok = fields["lattice"]
	}
	if !ok {
		return nil, Error{message: "no Lattice entry in the XYZ comment line", deco: []string{"XYZReadFrame"}, critical: true}
	}
	lf := strings.Fields(lattice)
	if len(lf) != 9 {
		return nil, Error{message: "Lattice entry must have 9 components", deco: []string{"XYZReadFrame"}, critical: true}
	}
	cellvals := make([]float64, 9)
	for i, v := range lf {
		cellvals[i], err = strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, Error{message: "ill formatted Lattice entry: " + err.Error(), deco: []string{"XYZReadFrame"}, critical: true}
		}
	}
	symbols := make([]string, natoms)
	coords := make([]float64, natoms*3)
	for i := 0; i < natoms; i++ {
		line, err = r.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, Error{message: fmt.Sprintf("ill formatted XYZ file: atom %d missing", i), deco: []string{"XYZReadFrame"}, critical: true}
		}
		af := strings.Fields(line)
		if len(af) < 4 {
			return nil, Error{message: fmt.Sprintf("ill formatted XYZ file: atom line %d has %d fields", i, len(af)), deco: []string{"XYZReadFrame"}, critical: true}
		}
		symbols[i] = af[0]
		for j := 1; j < 4; j++ {
			coords[i*3+j-1], err = strconv.ParseFloat(af[j], 64)
			if err != nil {
				return nil, Error{message: "ill formatted XYZ file: " + err.Error(), deco: []string{"XYZReadFrame"}, critical: true}
			}
		}
	}
	return NewStructure("", symbols, mat.NewDense(natoms, 3, coords), mat.NewDense(3, 3, cellvals))
}

//xyzCommentFields parses the key=value entries in the comment line of an
//extended XYZ file. Values may be double-quoted, in which case they can
//contain spaces. Everything else in the line is ignored.
func xyzCommentFields(comment string) map[string]string {
	ret := make(map[string]string)
	s := strings.TrimSpace(comment)
	for len(s) > 0 {
		eq := strings.Index(s, "=")
		if eq < 0 {
			break
		}
		key := strings.TrimSpace(s[:eq])
		if sp := strings.LastIndexAny(key, " \t"); sp >= 0 {
			key = key[sp+1:]
		}
		s = s[eq+1:]
		var val string
		if strings.HasPrefix(s, "\"") {
			end := strings.Index(s[1:], "\"")
			if end < 0 {
				break
			}
			val = s[1 : end+1]
			s = s[end+2:]
		} else {
			end := strings.IndexAny(s, " \t")
			if end < 0 {
				val = s
				s = ""
			} else {
				val = s[:end]
				s = s[end+1:]
			}
		}
		ret[key] = val
	}
	return ret
}

//Extended XYZ writing

//XYZWrite writes the structure st in extended XYZ format to the file
//xyzname, which is created or truncated.
func XYZWrite(xyzname string, st *Structure, energy ...float64) error {
	f, err := os.Create(xyzname)
	if err != nil {
		return Error{message: err.Error(), filename: xyzname, deco: []string{"XYZWrite"}, critical: true}
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if err := XYZWriteFrame(w, st, energy...); err != nil {
		return errDecorate(err, "XYZWrite "+xyzname)
	}
	return w.Flush()
}

//XYZWriteFrame writes one extended XYZ frame for st to w. If an energy (in
//eV) is given, it is added to the comment line. Only the first energy given
//is used.
func XYZWriteFrame(w io.Writer, st *Structure, energy ...float64) error {
	if st == nil {
		return Error{message: "nil structure", deco: []string{"XYZWriteFrame"}, critical: true}
	}
	c := st.Cell
	lattice := fmt.Sprintf("%.8f %.8f %.8f %.8f %.8f %.8f %.8f %.8f %.8f",
		c.At(0, 0), c.At(0, 1), c.At(0, 2),
		c.At(1, 0), c.At(1, 1), c.At(1, 2),
		c.At(2, 0), c.At(2, 1), c.At(2, 2))
	comment := fmt.Sprintf("Lattice=\"%s\" Properties=species:S:1:pos:R:3 pbc=\"T T T\"", lattice)
	if len(energy) > 0 {
		comment = fmt.Sprintf("%s energy=%.8f", comment, energy[0])
	}
	if _, err := fmt.Fprintf(w, "%d\n%s\n", st.Len(), comment); err != nil {
		return Error{message: err.Error(), deco: []string{"XYZWriteFrame"}, critical: true}
	}
	for i := 0; i < st.Len(); i++ {
		_, err := fmt.Fprintf(w, "%-3s %12.8f %12.8f %12.8f\n", st.Symbols[i],
			st.Coords.At(i, 0), st.Coords.At(i, 1), st.Coords.At(i, 2))
		if err != nil {
			return Error{message: err.Error(), deco: []string{"XYZWriteFrame"}, critical: true}
		}
	}
	return nil
}
