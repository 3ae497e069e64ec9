package system

import (
	"fmt"
	"strings"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/starfield/common"
	"github.com/milk9111/starfield/ecs/component"
	"go.uber.org/zap"
)

// ClassScript is a tengo script deciding which class of sun a nebula of a
// given hue becomes. The script must define classify(hue) returning one of
// "O", "A", "G", "K" or "M".
type ClassScript struct {
	name     string
	logger   *zap.Logger
	mu       sync.Mutex
	compiled *tengo.Compiled
}

const classDispatchScript = `
__class = classify(__hue)
`

func CompileClassScript(name string, src []byte, logger *zap.Logger) (*ClassScript, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	script := tengo.NewScript([]byte(string(src) + "\n" + classDispatchScript))
	_ = script.Add("__hue", 0.0)
	_ = script.Add("__class", "")
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("class script: compile %s: %w", name, err)
	}

	return &ClassScript{
		name:     name,
		logger:   logger.With(zap.String("script", name)),
		compiled: compiled,
	}, nil
}

// Classify runs the script for hue. Any script failure or unexpected result
// falls back to the builtin hue ranges.
func (c *ClassScript) Classify(hue float64) component.StarClass {
	hue = common.Wrap360(hue)
	if c == nil || c.compiled == nil {
		return component.ClassForHue(hue)
	}

	out, err := c.run(hue)
	if err != nil {
		c.logger.Warn("classify fell back to builtin", zap.Float64("hue", hue), zap.Error(err))
		return component.ClassForHue(hue)
	}
	return out
}

func (c *ClassScript) run(hue float64) (component.StarClass, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.compiled.Set("__hue", hue); err != nil {
		return 0, err
	}
	if err := c.compiled.Set("__class", ""); err != nil {
		return 0, err
	}
	if err := c.compiled.Run(); err != nil {
		return 0, err
	}

	v := c.compiled.Get("__class")
	if v.ValueType() != "string" {
		return 0, fmt.Errorf("classify returned %s, want string", v.ValueType())
	}
	return component.ParseStarClass(strings.TrimSpace(v.String()))
}

func (c *ClassScript) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}
