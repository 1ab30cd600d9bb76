package logging

//go:generate mockgen -destination=../listmocks/logger_mocks.go -package=listmocks . Logger

// Logger абстракция предназначенная для логирования в строго определённых ситуациях.
// Фатальные ошибки списка сюда не попадают, они обрабатываются на верхнем уровне.
type Logger interface {
	DumpFailed(dumpName string, err error)
	PersistFailed(baseName string, err error)
	ConfigNotFound(startDir string)
	PictureFailed(pictureName string, err error)
}
