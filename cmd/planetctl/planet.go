package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"exolens/internal/planet"
)

func newPromptCmd(asJSON *bool) *cobra.Command {
	var req planet.TextureRequest
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Build the texture prompt for planet parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := planet.Derive(req)
			out := cmd.OutOrStdout()
			if *asJSON {
				return printJSON(out, p)
			}
			field(out, "Star", "%s (%.1f R☉)", label(string(p.StarType)), p.StarRadius)
			field(out, "Planet", "%s", p.PlanetType)
			field(out, "Surface temperature", "%sK", planet.FormatKelvin(p.SurfaceTemperature))
			field(out, "Gravity", "%s", p.GravityDescription)
			fmt.Fprintln(out)
			fmt.Fprint(out, p.Prompt)
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&req.Radius, "radius", planet.EarthRadius, "planet radius in Earth radii")
	f.Float64Var(&req.Mass, "mass", planet.EarthMass, "planet mass in Earth masses")
	f.Float64Var(&req.StarTemperature, "temperature", 5778, "host star temperature in K")
	f.Float64Var(&req.Distance, "distance", 1, "orbital distance in AU")
	f.StringVar(&req.StarType, "star-type", string(planet.StarTypeSunLike), "red-dwarf, sun-like or blue-giant")
	f.StringVar(&req.PlanetType, "planet-type", string(planet.PlanetTypeTerrestrial), "Terrestrial, Super-Earth, Neptune-like or Gas Giant")
	return cmd
}

func newDeriveCmd(asJSON *bool) *cobra.Command {
	var params planet.AnalysisParams
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive simulation parameters from catalogue observations",
		RunE: func(cmd *cobra.Command, args []string) error {
			sim, err := planet.DeriveSimulation(params)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if *asJSON {
				return printJSON(out, sim)
			}
			field(out, "Star type", "%s", label(string(sim.StarType)))
			field(out, "Stellar mass", "%.3f M☉", sim.StellarMass)
			field(out, "Distance", "%.4f AU", sim.Distance)
			field(out, "Planet type", "%s", sim.PlanetType)
			field(out, "Mass", "%.2f M⊕", sim.Mass)
			field(out, "Density", "%.2f g/cm³", sim.Density)
			field(out, "Habitable zone", "%.1f-%.1f AU", sim.HabitableZone.Min, sim.HabitableZone.Max)
			field(out, "In habitable zone", "%t", sim.IsHabitable)
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&params.OrbitalPeriod, "period", 0, "orbital period in days (pl_orbper)")
	f.Float64Var(&params.PlanetRadius, "radius", 0, "planet radius in Earth radii (pl_rade)")
	f.Float64Var(&params.TransitDepth, "transit-depth", 0, "transit depth (pl_trandep)")
	f.Float64Var(&params.StellarTemperature, "teff", 0, "stellar effective temperature in K (st_teff)")
	f.Float64Var(&params.StellarRadius, "star-radius", 0, "stellar radius in solar radii (st_rad)")
	f.Float64Var(&params.StellarLogG, "logg", 0, "stellar surface gravity log10(cm/s²) (st_logg)")
	return cmd
}

func newESICmd(asJSON *bool) *cobra.Command {
	in := planet.EarthESIInput()
	cmd := &cobra.Command{
		Use:   "esi",
		Short: "Compute the Earth Similarity Index",
		RunE: func(cmd *cobra.Command, args []string) error {
			res := planet.EarthSimilarity(in)
			out := cmd.OutOrStdout()
			if *asJSON {
				return printJSON(out, res)
			}
			field(out, "ESI", "%.1f%%", res.ESI)
			field(out, "Classification", "%s", res.Classification)
			field(out, "Habitability", "%s", res.Habitability)
			field(out, "Density", "%.2f g/cm³", res.Density)
			field(out, "Radius similarity", "%.1f%%", res.Individual.Radius)
			field(out, "Escape similarity", "%.1f%%", res.Individual.Density)
			field(out, "Temp similarity", "%.1f%%", res.Individual.Temperature)
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&in.Radius, "radius", in.Radius, "planet radius in Earth radii")
	f.Float64Var(&in.Mass, "mass", in.Mass, "planet mass in Earth masses")
	f.Float64Var(&in.Temperature, "temperature", in.Temperature, "surface temperature in K")
	f.Float64Var(&in.EscapeVelocity, "escape-velocity", in.EscapeVelocity, "escape velocity in km/s")
	return cmd
}
