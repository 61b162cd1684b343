// Package portaltoken implementa tokens de capacidad para el portal: un token
// firmado y opaco que da acceso de lectura a un único registro (tipo + id),
// sin expiración, al estilo de los enlaces compartibles de documentos.
package portaltoken

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Tipos de registro soportados por el portal.
const (
	RecordAsset   = "it.asset"
	RecordRequest = "it.asset.request"
)

type claims struct {
	jwt.RegisteredClaims
	RecordType string `json:"record_type"`
}

// Sign genera el token de acceso para un registro concreto.
// Sin claim de expiración: el token vale mientras el registro exista.
func Sign(secret, recordType, recordID string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("portaltoken: secret vacío")
	}
	if recordType == "" || recordID == "" {
		return "", fmt.Errorf("portaltoken: registro incompleto")
	}
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: recordID},
		RecordType:       recordType,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
}

// Verify valida firma y pertenencia: el token debe referirse exactamente
// al registro (tipo + id) consultado.
func Verify(secret, token, recordType, recordID string) error {
	if secret == "" {
		return fmt.Errorf("portaltoken: secret vacío")
	}
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return err
	}
	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return fmt.Errorf("portaltoken: claims inválidos")
	}
	if c.RecordType != recordType || c.Subject != recordID {
		return fmt.Errorf("portaltoken: el token no corresponde al registro")
	}
	return nil
}
