package client

type Clients struct {
	*MyMemoryAPI
	*PythonAnyWhereAPI
}

func InitClients() Clients {
	return Clients{
		MyMemoryAPI:       NewMyMemoryAPI(),
		PythonAnyWhereAPI: NewPythonAnyWhereAPI(),
	}
}
