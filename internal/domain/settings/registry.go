package settings

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/resto-pos/internal/domain"
	"github.com/tu-usuario/resto-pos/internal/domain/entity"
)

// UpsertInput es el candidato parcial para crear o editar una cuenta.
// ID vacío significa alta; ID presente reemplaza la cuenta existente
// conservando su posición en el roster.
type UpsertInput struct {
	ID       string
	Name     string
	Role     string
	Password string
	Color    string
}

// Upsert valida el candidato y devuelve un roster NUEVO junto con la cuenta
// materializada. El roster recibido nunca se muta. Reglas:
//   - Name y Password son obligatorios (domain.ErrValidation si faltan).
//   - Las iniciales se recalculan en cada upsert, también en ediciones.
//   - Rol por defecto waiter; color por defecto la segunda entrada de la paleta.
//   - Sin ID se genera un identificador UUID y la cuenta se agrega al final.
func Upsert(accounts []entity.Account, in UpsertInput, now time.Time) ([]entity.Account, entity.Account, error) {
	if strings.TrimSpace(in.Name) == "" || in.Password == "" {
		return accounts, entity.Account{}, domain.ErrValidation
	}

	role := in.Role
	if role == "" {
		role = entity.RoleWaiter
	}
	if !entity.ValidRole(role) {
		return accounts, entity.Account{}, domain.ErrInvalidInput
	}

	color := in.Color
	if color == "" {
		color = entity.ProfileColors[1]
	}

	account := entity.Account{
		ID:        in.ID,
		Name:      in.Name,
		Initials:  Initials(in.Name),
		Role:      role,
		Password:  in.Password,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}

	next := make([]entity.Account, len(accounts))
	copy(next, accounts)

	if account.ID != "" {
		for i, existing := range next {
			if existing.ID == account.ID {
				account.CreatedAt = existing.CreatedAt
				next[i] = account
				return next, account, nil
			}
		}
		// ID desconocido: semántica upsert, se agrega al final.
		next = append(next, account)
		return next, account, nil
	}

	account.ID = uuid.New().String()
	next = append(next, account)
	return next, account, nil
}

// Initials deriva las iniciales de un nombre: primera runa de cada token
// separado por espacios, en mayúsculas, truncadas a 2 caracteres.
// Es idempotente respecto al nombre.
func Initials(name string) string {
	var initials []rune
	for _, token := range strings.Fields(name) {
		initials = append(initials, []rune(token)[0])
		if len(initials) == 2 {
			break
		}
	}
	return strings.ToUpper(string(initials))
}

// Delete devuelve un roster nuevo sin la cuenta indicada. Rechaza la
// eliminación cuando queda exactamente una cuenta (el registro nunca puede
// vaciarse); en ese caso el roster se devuelve sin cambios. Un ID
// inexistente es un no-op silencioso.
func Delete(accounts []entity.Account, id string) ([]entity.Account, error) {
	if len(accounts) <= 1 {
		return accounts, domain.ErrLastAccount
	}
	next := make([]entity.Account, 0, len(accounts))
	for _, a := range accounts {
		if a.ID != id {
			next = append(next, a)
		}
	}
	return next, nil
}
