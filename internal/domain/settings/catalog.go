package settings

import "github.com/tu-usuario/resto-pos/internal/domain/entity"

// AddSlot agrega la etiqueta al final de la secuencia de la categoría
// indicada y devuelve un catálogo nuevo. No hay restricción de unicidad:
// dos mesas físicas distintas pueden compartir nombre. Una categoría
// desconocida es un no-op silencioso.
func AddSlot(categories []entity.LocationCategory, categoryID, label string) []entity.LocationCategory {
	next := cloneCatalog(categories)
	for i := range next {
		if next[i].ID == categoryID {
			next[i].Slots = append(next[i].Slots, label)
			break
		}
	}
	return next
}

// RemoveSlot quita TODAS las ocurrencias de la etiqueta en la categoría
// indicada (filtrado por valor) y devuelve un catálogo nuevo. Una categoría
// desconocida o una etiqueta ausente son no-ops silenciosos.
//
// TODO: evaluar quitar solo la primera ocurrencia; hoy las etiquetas
// duplicadas desaparecen todas juntas.
func RemoveSlot(categories []entity.LocationCategory, categoryID, label string) []entity.LocationCategory {
	next := cloneCatalog(categories)
	for i := range next {
		if next[i].ID != categoryID {
			continue
		}
		kept := make([]string, 0, len(next[i].Slots))
		for _, s := range next[i].Slots {
			if s != label {
				kept = append(kept, s)
			}
		}
		next[i].Slots = kept
		break
	}
	return next
}

// cloneCatalog copia las categorías y sus secuencias de etiquetas para que
// el snapshot anterior quede disponible para undo o auditoría.
func cloneCatalog(categories []entity.LocationCategory) []entity.LocationCategory {
	next := make([]entity.LocationCategory, len(categories))
	for i, c := range categories {
		slots := make([]string, len(c.Slots))
		copy(slots, c.Slots)
		c.Slots = slots
		next[i] = c
	}
	return next
}
