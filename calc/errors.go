package calc

import (
	"errors"
	"fmt"

	mlpeg "github.com/ddmms/mlpeg"
)

//ErrNoData signals that no input structures could be obtained, neither from
//the remote archive nor from the local data directory. A run hitting it is
//reported as skipped, not as failed.
var ErrNoData = errors.New("calc: no benchmark input structures available")

//Error is the general error structure for the calc package. It fulfills
//mlpeg.Decorator.
type Error struct {
	message  string
	model    string //the model being run, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.model == "" {
		return fmt.Sprintf("calc: %s", err.message)
	}
	return fmt.Sprintf("calc: model %s: %s", err.model, err.message)
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

//errDecorate asserts that the error implements mlpeg.Decorator and
//decorates it with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2, ok := err.(mlpeg.Decorator)
	if !ok {
		return fmt.Errorf("%s: %w", caller, err)
	}
	err2.Decorate(caller)
	return err2
}
