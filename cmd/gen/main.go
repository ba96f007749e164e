// Command gen regenerates the type-safe query builders for the persistence
// models. Run it after changing anything under internal/infra/persistence/model.
package main

import (
	"rolodex/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	g.ApplyBasic(
		model.UserModel{},
		model.ContactModel{},
	)

	g.Execute()
}
