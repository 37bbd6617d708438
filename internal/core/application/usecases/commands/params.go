package commands

import (
	"strings"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/pkg/errs"
)

func requireID(param string, id kernel.UUID) error {
	if id.Validate() != nil {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}

func requireText(param, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", errs.NewValueIsRequiredError(param)
	}
	return trimmed, nil
}
