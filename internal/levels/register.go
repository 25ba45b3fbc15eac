// internal/levels/register.go

package levels

import "github.com/miravel/glossa/internal/level"

// Sequence returns the standard walkthrough: phonology, morphology, syntax,
// showcase.
func Sequence() *level.Sequence {
	seq := level.NewSequence()
	seq.MustRegister(level.StagePhonology, func() level.Level { return NewPhonology() })
	seq.MustRegister(level.StageMorphology, func() level.Level { return NewMorphology() })
	seq.MustRegister(level.StageSyntax, func() level.Level { return NewSyntax() })
	seq.MustRegister(level.StageShowcase, func() level.Level { return NewShowcase() })
	return seq
}
