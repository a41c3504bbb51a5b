package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyVitalsDbPath string = "VITALS_DB_PATH"

	LoggerNameVitalsCore    string = "vitals_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameGrpcServer    string = "grpc_server"
	LoggerNameCli           string = "cli"

	LoggerFieldVitalsCategory   string = "category"
	LoggerCategoryVitalsPatient string = "patient"
	LoggerCategoryVitalsThresh  string = "threshold"
	LoggerCategoryVitalsObserve string = "observation"
	LoggerCategoryVitalsAlert   string = "alert"
	LoggerCategoryVitalsImport  string = "import"
	LoggerCategoryVitalsReport  string = "report"
	LoggerCategoryVitalsLimit   string = "limiter"
)
