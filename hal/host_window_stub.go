//go:build !tinygo && !cgo

package hal

import "errors"

func RunWindow(_ HostConfig, _ int, _ func(HAL) (func() error, error)) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1) or use -headless")
}
