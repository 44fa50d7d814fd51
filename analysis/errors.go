package analysis

import (
	"fmt"

	mlpeg "github.com/ddmms/mlpeg"
)

//Error is the general error structure for the analysis package. It fulfills
//mlpeg.Decorator.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("analysis: %s", err.message)
}

//Decorate adds new information to the error.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

func errDecorate(err error, caller string) error {
	err2, ok := err.(mlpeg.Decorator)
	if !ok {
		return fmt.Errorf("%s: %w", caller, err)
	}
	err2.Decorate(caller)
	return err2
}
