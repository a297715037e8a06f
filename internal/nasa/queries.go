package nasa

import (
	"strings"

	"github.com/lib/pq"
)

// DefaultSystem is looked up when no system name is given.
const DefaultSystem = "TRAPPIST-1"

// Popular lists the systems suggested on the landing page.
var Popular = []string{
	"TRAPPIST-1",
	"Kepler-186",
	"Proxima Cen",
	"TOI-700",
	"K2-18",
	"HD 40307",
	"Gliese 667 C",
	"Kepler-452",
}

const searchColumns = `pl_name, hostname, discoverymethod, disc_year, disc_facility,
  pl_rade, pl_masse, pl_orbper, pl_orbsmax, pl_eqt, pl_insol, pl_dens,
  st_spectype, st_teff, st_rad, st_mass, st_logg, sy_dist, sy_vmag, default_flag`

// literal quotes user input for ADQL. Backslashes are dropped first so the
// result is always a plain single-quoted string.
func literal(s string) string {
	return pq.QuoteLiteral(strings.ReplaceAll(s, `\`, ""))
}

func systemQuery(name string) string {
	return `SELECT pl_name, pl_rade, pl_masse, pl_orbper, pl_orbsmax, pl_eqt, disc_year, hostname, st_rad, st_teff
FROM ps
WHERE hostname LIKE ` + literal(name+"%") + `
ORDER BY pl_orbper ASC`
}

func searchQuery(q string, kind SearchKind) string {
	column := "hostname"
	if kind == SearchPlanet {
		column = "pl_name"
	}
	return `SELECT ` + searchColumns + `
FROM ps
WHERE ` + column + ` LIKE ` + literal("%"+q+"%") + `
ORDER BY hostname, pl_orbper ASC`
}

func popularQuery(systems []string) string {
	quoted := make([]string, len(systems))
	for i, s := range systems {
		quoted[i] = literal(s)
	}
	return `SELECT hostname, COUNT(*) AS planet_count, st_spectype, st_teff, sy_dist
FROM ps
WHERE hostname IN (` + strings.Join(quoted, ",") + `)
GROUP BY hostname, st_spectype, st_teff, sy_dist
ORDER BY planet_count DESC`
}
