//Package chk persists operator matrices to zstd-compressed checkpoint
//files. It is a side channel: the shielding core stores intermediates
//through it but never reads them back. Each key becomes one file under the
//checkpoint directory, holding a small text header followed by the raw
//complex data.
package chk

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/rmera/gonmr/spinor"
)

const magic = "goNMR chk 1"

//Chk writes checkpoint entries under a directory. It fulfills the
//Checkpointer interface of the parent package.
type Chk struct {
	dir string
}

//New returns a checkpoint store rooted at dir, creating it if needed.
func New(dir string) (*Chk, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, Error{err.Error(), dir, nil}
	}
	return &Chk{dir: dir}, nil
}

//Store writes the matrices under the given key, replacing any previous
//entry for it.
func (C *Chk) Store(key string, mats []*spinor.Matrix) error {
	if C == nil {
		panic("goNMR/chk: Store called on a nil store")
	}
	f, err := os.Create(C.fileName(key))
	if err != nil {
		return Error{err.Error(), C.dir, []string{"Store"}}
	}
	defer f.Close()
	zw, err := zstd.NewWriter(f)
	if err != nil {
		return Error{err.Error(), C.dir, []string{"Store"}}
	}
	if err := writeEntry(zw, key, mats); err != nil {
		zw.Close()
		return errDecorate(err, "Store")
	}
	if err := zw.Close(); err != nil {
		return Error{err.Error(), C.dir, []string{"Store"}}
	}
	return nil
}

//Read loads the matrices stored under key in dir.
func Read(dir, key string) ([]*spinor.Matrix, error) {
	f, err := os.Open((&Chk{dir: dir}).fileName(key))
	if err != nil {
		return nil, Error{err.Error(), dir, []string{"Read"}}
	}
	defer f.Close()
	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, Error{err.Error(), dir, []string{"Read"}}
	}
	defer zr.Close()
	mats, err := readEntry(bufio.NewReader(zr), key)
	if err != nil {
		return nil, errDecorate(err, "Read")
	}
	return mats, nil
}

func (C *Chk) fileName(key string) string {
	return filepath.Join(C.dir, strings.ReplaceAll(key, "/", "_")+".chk.zst")
}

func writeEntry(w io.Writer, key string, mats []*spinor.Matrix) error {
	if _, err := fmt.Fprintf(w, "%s\n%s\n%d\n", magic, key, len(mats)); err != nil {
		return Error{err.Error(), "", []string{"writeEntry"}}
	}
	for _, m := range mats {
		r, c := m.Dims()
		if _, err := fmt.Fprintf(w, "%d %d\n", r, c); err != nil {
			return Error{err.Error(), "", []string{"writeEntry"}}
		}
		data := make([]complex128, 0, r*c)
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				data = append(data, m.At(i, j))
			}
		}
		if err := binary.Write(w, binary.LittleEndian, data); err != nil {
			return Error{err.Error(), "", []string{"writeEntry"}}
		}
	}
	return nil
}

func readLine(br *bufio.Reader) (string, error) {
	s, err := br.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(s, "\n"), nil
}

func readEntry(br *bufio.Reader, key string) ([]*spinor.Matrix, error) {
	gotMagic, err := readLine(br)
	if err != nil || gotMagic != magic {
		return nil, Error{WrongFormat, "", []string{"readEntry"}}
	}
	gotKey, err := readLine(br)
	if err != nil || gotKey != key {
		return nil, Error{WrongFormat, "", []string{"readEntry"}}
	}
	line, err := readLine(br)
	if err != nil {
		return nil, Error{WrongFormat, "", []string{"readEntry"}}
	}
	var n int
	if _, err := fmt.Sscanf(line, "%d", &n); err != nil {
		return nil, Error{WrongFormat, "", []string{"readEntry"}}
	}
	mats := make([]*spinor.Matrix, n)
	for k := 0; k < n; k++ {
		line, err := readLine(br)
		if err != nil {
			return nil, Error{WrongFormat, "", []string{"readEntry"}}
		}
		var r, c int
		if _, err := fmt.Sscanf(line, "%d %d", &r, &c); err != nil {
			return nil, Error{WrongFormat, "", []string{"readEntry"}}
		}
		data := make([]complex128, r*c)
		if err := binary.Read(br, binary.LittleEndian, data); err != nil {
			return nil, Error{err.Error(), "", []string{"readEntry"}}
		}
		mats[k] = spinor.New(r, c, data)
	}
	return mats, nil
}

//Error messages.
const (
	WrongFormat = "wrong format in the checkpoint file"
)

//Error is the error type of the package. It fulfills the parent package's
//Error interface.
type Error struct {
	message string
	dir     string
	deco    []string
}

func (err Error) Error() string {
	return fmt.Sprintf("checkpoint %s error: %s", err.dir, err.message)
}

//Decorate adds new information to the error and returns the current trail.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//errDecorate adds the caller's name to an Error of this package.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}
