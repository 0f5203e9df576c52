// One-shot import of a legacy plants.json file into the sqlite store.
// Imported plants are appended to whatever is already there; run it once.
package main

import (
	"flag"
	"log"
	"os"

	"plantlog/config"
	"plantlog/database"
	plantRepoImp "plantlog/pkg/plant/repositoryImp"
)

func main() {
	jsonPath := flag.String("json", "plants.json", "path to the legacy plants.json")
	flag.Parse()

	cfg := config.Load()
	db := database.OpenSQLite(cfg.DBPath)
	repo := plantRepoImp.New(db)

	f, err := os.Open(*jsonPath)
	if err != nil {
		log.Fatalf("open %s: %v", *jsonPath, err)
	}
	defer f.Close()

	imported, err := database.ImportLegacyJSON(f)
	if err != nil {
		log.Fatalf("import: %v", err)
	}
	if len(imported) == 0 {
		log.Printf("no plants to migrate")
		return
	}

	existing, err := repo.Load()
	if err != nil {
		log.Fatalf("load: %v", err)
	}
	if err := repo.Replace(append(existing, imported...)); err != nil {
		log.Fatalf("save: %v", err)
	}
	log.Printf("migrated %d plants with full history", len(imported))
}
