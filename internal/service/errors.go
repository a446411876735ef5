package service

import "errors"

// ErrForbidden indica que el actor no tiene derechos sobre el recurso
var ErrForbidden = errors.New("no tiene permisos sobre este recurso")
