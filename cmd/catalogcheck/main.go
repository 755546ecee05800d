package main

import (
	"flag"
	"os"

	"github.com/go-kit/log/level"

	"gpa-tracker/app/catalog"
	"gpa-tracker/app/config"
	"gpa-tracker/app/logging"
)

// catalogcheck validates a curriculum file before it is deployed through
// CATALOG_PATH. With no argument it checks the file CATALOG_PATH points at, or
// the built-in curriculum.
func main() {
	flag.Parse()

	cfg, _ := config.LoadEnv()
	logger := logging.NewWithWriter(os.Stdout, cfg.Log.Level)

	path := cfg.CatalogPath
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	level.Info(logger).Log("msg", "checking catalog", "path", path)
	cat, err := catalog.Load(path)
	if err != nil {
		level.Error(logger).Log("msg", "catalog is invalid", "err", err)
		os.Exit(1)
	}

	for _, sem := range cat.Semesters() {
		credits := 0
		for _, s := range sem.Subjects {
			credits += s.Credit
		}
		level.Info(logger).Log("semester", sem.Number, "name", sem.Name, "subjects", len(sem.Subjects), "credits", credits)
	}
	level.Info(logger).Log("msg", "catalog is valid", "semesters", len(cat.Semesters()))
}
