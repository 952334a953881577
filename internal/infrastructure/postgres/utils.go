package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// locationArg convierte una ubicación al valor de columna (NULL para LocationNone).
func locationArg(l entity.Location) *string {
	if l == entity.LocationNone {
		return nil
	}
	s := l.String()
	return &s
}

func scanLocation(s *string) (entity.Location, error) {
	if s == nil {
		return entity.LocationNone, nil
	}
	return entity.ParseLocation(*s)
}
