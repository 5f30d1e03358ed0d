package config

const (
	DriverFile     = "file"
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

type StorageConfig struct {
	DriverName string `yaml:"driver"`
	UsersPath  string `yaml:"users-file"`
	TxPath     string `yaml:"transactions-file"`
}

func (s *StorageConfig) Driver() string {
	if s.DriverName == "" {
		return DriverFile
	}
	return s.DriverName
}

func (s *StorageConfig) UsersFile() string {
	if s.UsersPath == "" {
		return "data/users.csv"
	}
	return s.UsersPath
}

func (s *StorageConfig) TransactionsFile() string {
	if s.TxPath == "" {
		return "data/transactions.csv"
	}
	return s.TxPath
}
