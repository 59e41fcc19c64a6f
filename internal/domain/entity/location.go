package entity

// LocationCategory representa una clase de ubicaciones de servicio
// (ej. "Salón principal") con su secuencia ordenada de etiquetas.
// Las categorías se aprovisionan externamente; este núcleo solo
// agrega y quita etiquetas.
type LocationCategory struct {
	ID    string
	Name  string
	Slots []string // orden de inserción significativo; duplicados permitidos
}
