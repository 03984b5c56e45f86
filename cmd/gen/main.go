// Command gen writes type-safe gorm query helpers for the persistence models.
package main

import (
	"flag"

	"github.com/Abhithakur7080/your-video/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	outPath := flag.String("out", "./internal/infra/persistence/postgres/query", "output directory for generated queries")
	flag.Parse()

	g := gen.NewGenerator(gen.Config{
		OutPath:       *outPath,
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(model.All()...)

	g.Execute()
}
