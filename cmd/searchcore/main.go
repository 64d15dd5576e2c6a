package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pkgsearch/search-core/api"
	"github.com/pkgsearch/search-core/config"
	"github.com/pkgsearch/search-core/corpus"
	"github.com/pkgsearch/search-core/corpus/memory"
	"github.com/pkgsearch/search-core/corpus/postgres"
	"github.com/pkgsearch/search-core/internal/engine"
	"github.com/pkgsearch/search-core/internal/metrics"
	"github.com/pkgsearch/search-core/internal/search"
)

func main() {
	var (
		help            = flag.Bool("help", false, "Show help message")
		version         = flag.Bool("version", false, "Show version information")
		port            = flag.String("port", "8080", "Port to run the server on")
		schemaPath      = flag.String("schema", "", "Path to a YAML field-collection schema; defaults to a single packages collection")
		fieldCollection = flag.String("field-collection", "packages", "Name of the field collection the /packages surface serves")
		corpusKind      = flag.String("corpus", "memory", "Corpus provider to use: memory or postgres")
		databaseURL     = flag.String("database-url", "", "Postgres connection string, required when --corpus=postgres")
	)

	flag.Parse()

	if *help {
		fmt.Printf("Search Core - an in-memory inverted-index search service\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                                        # Start on port 8080 with an empty in-memory corpus\n", os.Args[0])
		fmt.Printf("  %s --corpus postgres --database-url ...   # Serve packages out of Postgres\n", os.Args[0])
		return
	}

	if *version {
		fmt.Printf("search-core v0.1.0\n")
		return
	}

	settings, err := loadSettings(*schemaPath, *fieldCollection)
	if err != nil {
		log.Fatalf("loading schema: %v", err)
	}

	if result := api.ValidateFieldCollectionName(settings.Name); !result.Valid {
		log.Fatalf("invalid field collection name %q: %+v", settings.Name, result.Errors)
	}

	ctx := context.Background()
	provider, closeProvider, err := buildProvider(ctx, *corpusKind, *databaseURL)
	if err != nil {
		log.Fatalf("initializing corpus provider: %v", err)
	}
	if closeProvider != nil {
		defer closeProvider()
	}

	searchEngine := engine.New()
	if _, err := searchEngine.Register(settings, provider); err != nil {
		log.Fatalf("registering field collection %q: %v", settings.Name, err)
	}

	log.Printf("building initial index for field collection %q...", settings.Name)
	generation, err := searchEngine.Rebuild(settings.Name)
	if err != nil {
		log.Fatalf("initial rebuild of %q failed: %v", settings.Name, err)
	}
	log.Printf("field collection %q ready at generation %d", settings.Name, generation)

	metricsRegistry := metrics.New()
	if collection, err := searchEngine.Get(settings.Name); err == nil {
		metricsRegistry.SetIndexDocuments(settings.Name, len(collection.DocumentIDs()))
	}

	searchService := search.NewService(searchEngine)

	router := gin.Default()
	api.SetupRoutes(router, searchService, searchEngine, metricsRegistry, settings.Name)

	log.Printf("starting server on port %s...", *port)
	if err := router.Run(":" + *port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// loadSettings resolves the field-collection schema to register: from a
// YAML schema file naming fieldCollection if --schema was given, or a
// built-in default otherwise.
func loadSettings(schemaPath, fieldCollection string) (config.FieldCollectionSettings, error) {
	if schemaPath == "" {
		return defaultSettings(fieldCollection), nil
	}

	collections, err := config.LoadSchema(schemaPath)
	if err != nil {
		return config.FieldCollectionSettings{}, err
	}
	for _, c := range collections {
		if c.Name == fieldCollection {
			return c, nil
		}
	}
	return config.FieldCollectionSettings{}, fmt.Errorf("schema file %s has no collection named %q", schemaPath, fieldCollection)
}

// defaultSettings mirrors the package-registry shape described for the
// /packages surface: name, description and readme as searchable fields,
// five numeric fields available for non-relevance orderings.
func defaultSettings(name string) config.FieldCollectionSettings {
	settings := config.FieldCollectionSettings{
		Name: name,
		Fields: []config.FieldSetting{
			{Name: "name", Weight: 3},
			{Name: "description", Weight: 1},
			{Name: "readme", Weight: 0.5},
		},
		OrderingFields: []string{"updated", "created", "popularity", "likes", "points"},
	}
	settings.ApplyDefaults()
	return settings
}

// buildProvider constructs the corpus.Provider named by kind. The returned
// close function is nil for providers with nothing to release.
func buildProvider(ctx context.Context, kind, databaseURL string) (corpus.Provider, func(), error) {
	switch strings.ToLower(kind) {
	case "memory":
		return memory.New(), nil, nil
	case "postgres":
		if databaseURL == "" {
			return nil, nil, fmt.Errorf("--database-url is required when --corpus=postgres")
		}
		provider, err := postgres.Open(ctx, databaseURL, postgres.Columns{
			FieldColumns: map[string]string{
				"name":        "name",
				"description": "description",
				"readme_text": "readme",
			},
			OrderingColumns: map[string]string{
				"updated_at_epoch": "updated",
				"created_at_epoch": "created",
				"popularity_score": "popularity",
				"like_count":       "likes",
				"points":           "points",
			},
		})
		if err != nil {
			return nil, nil, err
		}
		return provider, provider.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown corpus provider %q (want memory or postgres)", kind)
	}
}
