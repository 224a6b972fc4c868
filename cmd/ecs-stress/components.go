package main

import "math/rand"

//go:generate go run github.com/plus3/bundlecs/cmd/ecsgen -type StressBundle

type Transform struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Health struct {
	Current, Max int
}

type Label string

type Tags struct {
	Values []string
}

// Clone copies the tag slice so query results never share it with the world.
func (t Tags) Clone() Tags {
	return Tags{Values: append([]string(nil), t.Values...)}
}

type StressBundle struct {
	Transform *Transform
	Velocity  *Velocity
	Health    *Health
	Label     *Label
	Tags      *Tags
}

// randomBundle builds a bundle where each component is present with probability p.
func randomBundle(rnd *rand.Rand, p float64) StressBundle {
	b := NewStressBundle()
	if rnd.Float64() < p {
		b = b.WithTransform(Transform{X: rnd.Float32() * 100, Y: rnd.Float32() * 100})
	}
	if rnd.Float64() < p {
		b = b.WithVelocity(Velocity{DX: rnd.Float32() - 0.5, DY: rnd.Float32() - 0.5})
	}
	if rnd.Float64() < p {
		b = b.WithHealth(Health{Current: rnd.Intn(100), Max: 100})
	}
	if rnd.Float64() < p {
		b = b.WithLabel(Label("entity"))
	}
	if rnd.Float64() < p {
		b = b.WithTags(Tags{Values: []string{"stress"}})
	}
	return b
}
