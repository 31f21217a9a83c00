package main

import (
	"os"
	"reflect"
	"strings"

	musgen "github.com/mus-format/musgen-go/mus"
	genops "github.com/mus-format/musgen-go/options/generate"
	structops "github.com/mus-format/musgen-go/options/struct"
	typeops "github.com/mus-format/musgen-go/options/type"
	"github.com/poiesic/marginalia/core"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	// If we're in the core subpackage, cd up to project root
	if strings.HasSuffix(cwd, "core") {
		if err := os.Chdir(".."); err != nil {
			panic(err)
		}
	}
	g, err := musgen.NewCodeGenerator(
		genops.WithPkgPath("github.com/poiesic/marginalia/core"),
	)
	if err != nil {
		panic(err)
	}

	g.AddDefinedType(reflect.TypeFor[core.ID]())
	g.AddDefinedType(reflect.TypeFor[core.ActionType]())
	g.AddDefinedType(reflect.TypeFor[core.CommentKind]())

	for _, t := range []reflect.Type{
		reflect.TypeFor[core.Color](),
		reflect.TypeFor[core.Point](),
		reflect.TypeFor[core.Rect](),
		reflect.TypeFor[core.Quad](),
	} {
		if err := g.AddStruct(t); err != nil {
			panic(err)
		}
	}

	// Unix micro timestamps
	opts := typeops.WithTimeUnit(typeops.Micro)
	err = g.AddStruct(reflect.TypeFor[core.Annotation](),
		structops.WithField(), // Id
		structops.WithField(), // Document
		structops.WithField(), // Page
		structops.WithField(), // Action
		structops.WithField(), // Kind
		structops.WithField(), // Text
		structops.WithField(), // Comment
		structops.WithField(), // Subject
		structops.WithField(), // Author
		structops.WithField(), // Color
		structops.WithField(), // Quads
		structops.WithField(), // OpenPopup
		structops.WithField(), // PopupRect
		structops.WithField(opts),
		structops.WithField(opts))
	if err != nil {
		panic(err)
	}

	err = g.AddStruct(reflect.TypeFor[core.Checkpoint](),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(opts))
	if err != nil {
		panic(err)
	}

	bs, err := g.Generate()
	if err != nil {
		panic(err)
	}

	err = os.WriteFile("./core/records_mus.gen.go", bs, 0644)
	if err != nil {
		panic(err)
	}
}
