package config

type Store struct {
	URI        string `env:"MONGO_URI,required,notEmpty,expand"`
	Database   string `env:"DB_NAME,required,notEmpty,expand"`
	Collection string `env:"COLLECTION_NAME,required,notEmpty,expand"`
}

type Catalog struct {
	// Path to an items file replacing the embedded catalog
	File string `env:"FILE,expand"`
}

type Sentry struct {
	DSN         string `env:"DSN,expand"`
	Environment string `env:"ENVIRONMENT,expand" envDefault:"production"`
}
