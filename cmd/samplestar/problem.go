package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Problem names one (map, start, goal) scenario a run can target, the Go/
// YAML counterpart of original_source/src/maps.rs's Problem tuple constants
// and MAP_PACK array.
type Problem struct {
	Name     string  `yaml:"name"`
	MapPath  string  `yaml:"map_path"`
	StartX   int     `yaml:"start_x"`
	StartY   int     `yaml:"start_y"`
	GoalX    int     `yaml:"goal_x"`
	GoalY    int     `yaml:"goal_y"`
	Epoch    int     `yaml:"epoch"`
	Kernel   int     `yaml:"kernel_size"`
	Sigma    float64 `yaml:"sigma"`
	MaxSteps int     `yaml:"max_steps"`

	// UpdateKernel/UpdateSigma parameterize the per-step raycast measurement
	// covariance (belief.Grid.RaycastUpdate's kernel argument), distinct
	// from Kernel/Sigma's one-time setup blur: a Gaussian weighted toward
	// the center is a reasonable prior smoothing but a poor covariance
	// model for a ray update, so these can be set separately; when left
	// unset, applyDefaults copies Kernel/Sigma into them.
	UpdateKernel int     `yaml:"update_kernel_size"`
	UpdateSigma  float64 `yaml:"update_sigma"`
}

// ErrProblemNotFound indicates a requested problem name is absent from the
// loaded pack.
type ErrProblemNotFound struct {
	Name string
}

func (e *ErrProblemNotFound) Error() string {
	return fmt.Sprintf("cmd/samplestar: no such problem %q", e.Name)
}

// problemPack is the top-level shape of a problems.yaml file.
type problemPack struct {
	Problems []Problem `yaml:"problems"`
}

// LoadProblems reads a YAML problem pack from path.
func LoadProblems(path string) ([]Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pack problemPack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("cmd/samplestar: parsing %s: %w", path, err)
	}
	return pack.Problems, nil
}

// FindProblem returns the first problem in problems named name.
func FindProblem(problems []Problem, name string) (Problem, error) {
	for _, p := range problems {
		if p.Name == name {
			return p, nil
		}
	}
	return Problem{}, &ErrProblemNotFound{Name: name}
}

// applyDefaults fills zero-valued tunables with the driver's defaults
// (spec.md §6: "typical parameters: kernel size 3-5, sigma = 1.0").
func (p Problem) applyDefaults() Problem {
	if p.Epoch <= 0 {
		p.Epoch = 32
	}
	if p.Kernel <= 0 {
		p.Kernel = 3
	}
	if p.Sigma <= 0 {
		p.Sigma = 1.0
	}
	if p.MaxSteps <= 0 {
		p.MaxSteps = 500
	}
	if p.UpdateKernel <= 0 {
		p.UpdateKernel = p.Kernel
	}
	if p.UpdateSigma <= 0 {
		p.UpdateSigma = p.Sigma
	}
	return p
}
