// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// groupErrors maps the top-level field of a failed struct namespace to the
// sentinel error reported for that group.
var groupErrors = map[string]error{
	"App":     ErrInvalidAppConfigs,
	"Adapter": ErrInvalidAdapterConfigs,
	"Storage": ErrInvalidStorageConfigs,
	"Server":  ErrInvalidServerConfigs,
	"Auth":    ErrInvalidAuthConfigs,
}

func (cfg *ClientConfig) validate() error {
	return validateStruct(cfg)
}

func (cfg *ServerConfig) validate() error {
	return validateStruct(cfg)
}

// validateStruct runs the struct tag rules and reports the first failed
// field wrapped in its group sentinel.
func validateStruct(cfg any) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	first := verrs[0]
	// Namespace looks like "ClientConfig.Adapter.HTTPAddress".
	parts := strings.SplitN(first.Namespace(), ".", 3)
	if len(parts) >= 2 {
		if sentinel, ok := groupErrors[parts[1]]; ok {
			return fmt.Errorf("%w: %s failed on %q", sentinel, first.Namespace(), first.Tag())
		}
	}

	return err
}
