package unicov

// Register every report adapter with the parser registry.
import (
	_ "github.com/IgorBayerl/unicov/internal/parser/bullseye"
	_ "github.com/IgorBayerl/unicov/internal/parser/cobertura"
	_ "github.com/IgorBayerl/unicov/internal/parser/jacoco"
	_ "github.com/IgorBayerl/unicov/internal/parser/jsoncov"
	_ "github.com/IgorBayerl/unicov/internal/parser/llvmcov"
	_ "github.com/IgorBayerl/unicov/internal/parser/xccov"
)
