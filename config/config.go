// Package config loads a run's UniverseProperties and species
// distribution parameters from a key=value text format, using
// github.com/magiconair/properties for the file format and
// github.com/spf13/cast to coerce loosely-typed config values into the
// Go types Config needs.
package config

import (
	"strings"

	"github.com/magiconair/properties"
	"github.com/spf13/cast"

	"github.com/ctessum/pic3d"
)

// Species holds one species' per-cell particle count, charge-to-mass
// ratio, and initial thermal/drift velocity distribution parameters,
// taken from the `ns`-indexed configuration keys.
type Species struct {
	NPCelX, NPCelY, NPCelZ int
	QOM                    float64
	RhoInit                float64
	Uth, Vth, Wth          float64
	U0, V0, W0             float64
}

// Config is everything recognized in a run's configuration file.
type Config struct {
	Dt      float64
	NCycles int

	Lx, Ly, Lz    float64
	Nxc, Nyc, Nzc int

	ObjectCenter pic3d.Vec3
	PlanetRadius float64 // L_square

	B0 pic3d.Vec3 // initial magnetic field
	B1 pic3d.Vec3 // external field amplitude

	UseCase pic3d.UseCase

	// Solver selects which field-solver variant runs a Dipole use case:
	// "static" (the default) or "forward". This key resolves the
	// ambiguity of having two solvers that both apply to the Dipole use
	// case.
	Solver string

	Species []Species

	FieldOutputCycle     int
	ParticlesOutputCycle int
}

// Load reads and parses a configuration file at path. It returns a
// *pic3d.ConfigError if the file cannot be read, a required key is
// missing, or a required key's value cannot be coerced to the type it
// needs, so the caller can abort before any cycle begins. An optional
// key (object center, planet radius, B0/B1, output cycles) whose value
// cannot be coerced takes its default instead; no error is returned for
// it. Value ranges are not checked here.
func Load(path string) (*Config, error) {
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, &pic3d.ConfigError{Msg: err.Error()}
	}
	return parse(p)
}

func parse(p *properties.Properties) (*Config, error) {
	c := &Config{}
	var err error

	if c.Dt, err = requireFloat(p, "dt"); err != nil {
		return nil, err
	}
	if c.NCycles, err = requireInt(p, "ncycles"); err != nil {
		return nil, err
	}
	if c.Lx, err = requireFloat(p, "Lx"); err != nil {
		return nil, err
	}
	if c.Ly, err = requireFloat(p, "Ly"); err != nil {
		return nil, err
	}
	if c.Lz, err = requireFloat(p, "Lz"); err != nil {
		return nil, err
	}
	if c.Nxc, err = requireInt(p, "nxc"); err != nil {
		return nil, err
	}
	if c.Nyc, err = requireInt(p, "nyc"); err != nil {
		return nil, err
	}
	if c.Nzc, err = requireInt(p, "nzc"); err != nil {
		return nil, err
	}

	c.ObjectCenter.X = optionalFloat(p, "x_center", 0)
	c.ObjectCenter.Y = optionalFloat(p, "y_center", 0)
	c.ObjectCenter.Z = optionalFloat(p, "z_center", 0)
	c.PlanetRadius = optionalFloat(p, "L_square", 0)

	c.B0.X = optionalFloat(p, "B0x", 0)
	c.B0.Y = optionalFloat(p, "B0y", 0)
	c.B0.Z = optionalFloat(p, "B0z", 0)
	c.B1.X = optionalFloat(p, "B1x", 0)
	c.B1.Y = optionalFloat(p, "B1y", 0)
	c.B1.Z = optionalFloat(p, "B1z", 0)

	c.UseCase = parseCase(p.GetString("Case", "Test"))
	c.Solver = strings.ToLower(strings.TrimSpace(p.GetString("Solver", "static")))

	ns, err := requireInt(p, "ns")
	if err != nil {
		return nil, err
	}

	npcelx, err := requireIntList(p, "npcelx", ns)
	if err != nil {
		return nil, err
	}
	npcely, err := requireIntList(p, "npcely", ns)
	if err != nil {
		return nil, err
	}
	npcelz, err := requireIntList(p, "npcelz", ns)
	if err != nil {
		return nil, err
	}
	qom, err := requireFloatList(p, "qom", ns)
	if err != nil {
		return nil, err
	}
	rhoInit, err := requireFloatList(p, "rhoINIT", ns)
	if err != nil {
		return nil, err
	}
	uth, err := requireFloatList(p, "uth", ns)
	if err != nil {
		return nil, err
	}
	vth, err := requireFloatList(p, "vth", ns)
	if err != nil {
		return nil, err
	}
	wth, err := requireFloatList(p, "wth", ns)
	if err != nil {
		return nil, err
	}
	u0, err := requireFloatList(p, "u0", ns)
	if err != nil {
		return nil, err
	}
	v0, err := requireFloatList(p, "v0", ns)
	if err != nil {
		return nil, err
	}
	w0, err := requireFloatList(p, "w0", ns)
	if err != nil {
		return nil, err
	}

	c.Species = make([]Species, ns)
	for i := 0; i < ns; i++ {
		c.Species[i] = Species{
			NPCelX: npcelx[i], NPCelY: npcely[i], NPCelZ: npcelz[i],
			QOM:     qom[i],
			RhoInit: rhoInit[i],
			Uth:     uth[i], Vth: vth[i], Wth: wth[i],
			U0: u0[i], V0: v0[i], W0: w0[i],
		}
	}

	c.FieldOutputCycle = optionalInt(p, "FieldOutputCycle", 0)
	c.ParticlesOutputCycle = optionalInt(p, "ParticlesOutputCycle", 0)

	return c, nil
}

// parseCase maps the configured Case string to a UseCase, defaulting
// unrecognised values to Test.
func parseCase(s string) pic3d.UseCase {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dipole":
		return pic3d.Dipole
	case "particlewave":
		return pic3d.ParticleWave
	default:
		return pic3d.Test
	}
}

// UniverseProperties builds the pic3d.UniverseProperties this
// configuration describes. SpeedOfLight is not a configuration key;
// it is normalized to 1 unless a caller overrides the returned value,
// matching the normalized-units convention the forward solver's curl
// stencils already assume (no explicit c² factor in the E update).
func (c *Config) UniverseProperties() pic3d.UniverseProperties {
	return pic3d.UniverseProperties{
		Nx: c.Nxc, Ny: c.Nyc, Nz: c.Nzc,
		Dx: c.Lx / float64(c.Nxc), Dy: c.Ly / float64(c.Nyc), Dz: c.Lz / float64(c.Nzc),
		Dt:           c.Dt,
		UseCase:      c.UseCase,
		PlanetRadius: c.PlanetRadius,
		ObjectCenter: c.ObjectCenter,
		B0:           c.B0,
		SpeedOfLight: 1,
	}
}

func requireFloat(p *properties.Properties, key string) (float64, error) {
	v, ok := p.Get(key)
	if !ok {
		return 0, &pic3d.ConfigError{Msg: "missing required key " + key}
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, &pic3d.ConfigError{Msg: "key " + key + ": " + err.Error()}
	}
	return f, nil
}

func requireInt(p *properties.Properties, key string) (int, error) {
	v, ok := p.Get(key)
	if !ok {
		return 0, &pic3d.ConfigError{Msg: "missing required key " + key}
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, &pic3d.ConfigError{Msg: "key " + key + ": " + err.Error()}
	}
	return n, nil
}

func optionalFloat(p *properties.Properties, key string, def float64) float64 {
	v, ok := p.Get(key)
	if !ok {
		return def
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return def
	}
	return f
}

func optionalInt(p *properties.Properties, key string, def int) int {
	v, ok := p.Get(key)
	if !ok {
		return def
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return def
	}
	return n
}

func requireFloatList(p *properties.Properties, key string, n int) ([]float64, error) {
	v, ok := p.Get(key)
	if !ok {
		return nil, &pic3d.ConfigError{Msg: "missing required key " + key}
	}
	fields := strings.Fields(v)
	if len(fields) != n {
		return nil, &pic3d.ConfigError{Msg: key + ": expected " + cast.ToString(n) + " values, got " + cast.ToString(len(fields))}
	}
	out := make([]float64, n)
	for i, f := range fields {
		fv, err := cast.ToFloat64E(f)
		if err != nil {
			return nil, &pic3d.ConfigError{Msg: "key " + key + ": " + err.Error()}
		}
		out[i] = fv
	}
	return out, nil
}

func requireIntList(p *properties.Properties, key string, n int) ([]int, error) {
	v, ok := p.Get(key)
	if !ok {
		return nil, &pic3d.ConfigError{Msg: "missing required key " + key}
	}
	fields := strings.Fields(v)
	if len(fields) != n {
		return nil, &pic3d.ConfigError{Msg: key + ": expected " + cast.ToString(n) + " values, got " + cast.ToString(len(fields))}
	}
	out := make([]int, n)
	for i, f := range fields {
		iv, err := cast.ToIntE(f)
		if err != nil {
			return nil, &pic3d.ConfigError{Msg: "key " + key + ": " + err.Error()}
		}
		out[i] = iv
	}
	return out, nil
}
