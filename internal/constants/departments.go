package constants

// Department is one of the 14 top-level administrative divisions of
// El Salvador. Slugs are the URL-safe identifiers used in routes.
type Department struct {
	Slug    string
	Name    string
	Capital string
}

var Departments = []Department{
	{Slug: "ahuachapan", Name: "Ahuachapán", Capital: "Ahuachapán"},
	{Slug: "cabanas", Name: "Cabañas", Capital: "Sensuntepeque"},
	{Slug: "chalatenango", Name: "Chalatenango", Capital: "Chalatenango"},
	{Slug: "cuscatlan", Name: "Cuscatlán", Capital: "Cojutepeque"},
	{Slug: "la-libertad", Name: "La Libertad", Capital: "Santa Tecla"},
	{Slug: "la-paz", Name: "La Paz", Capital: "Zacatecoluca"},
	{Slug: "la-union", Name: "La Unión", Capital: "La Unión"},
	{Slug: "morazan", Name: "Morazán", Capital: "San Francisco Gotera"},
	{Slug: "san-miguel", Name: "San Miguel", Capital: "San Miguel"},
	{Slug: "san-salvador", Name: "San Salvador", Capital: "San Salvador"},
	{Slug: "san-vicente", Name: "San Vicente", Capital: "San Vicente"},
	{Slug: "santa-ana", Name: "Santa Ana", Capital: "Santa Ana"},
	{Slug: "sonsonate", Name: "Sonsonate", Capital: "Sonsonate"},
	{Slug: "usulutan", Name: "Usulután", Capital: "Usulután"},
}

// DepartmentBySlug resolves a region slug against the fixed set.
func DepartmentBySlug(slug string) (Department, bool) {
	for _, d := range Departments {
		if d.Slug == slug {
			return d, true
		}
	}
	return Department{}, false
}
