package server

// Server объединяет специфичные HTTP сервера, отвечающие за обработку
// конкретных сущностей: каталог, сделки, здоровье.
type Server struct {
	CatalogServer
	DealServer
	HealthServer
}

func NewServer(
	catalogServer CatalogServer,
	dealServer DealServer,
	healthServer HealthServer,
) Server {
	return Server{
		CatalogServer: catalogServer,
		DealServer:    dealServer,
		HealthServer:  healthServer,
	}
}
