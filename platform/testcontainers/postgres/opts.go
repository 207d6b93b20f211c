package postgres

type Option func(*Config)

func WithContainerName(containerName string) Option {
	return func(c *Config) {
		c.ContainerName = containerName
	}
}

func WithImageName(image string) Option {
	return func(c *Config) {
		if image != "" {
			c.ImageName = image
		}
	}
}

func WithDatabase(database string) Option {
	return func(c *Config) {
		if database != "" {
			c.Database = database
		}
	}
}

func WithAuth(username, password string) Option {
	return func(c *Config) {
		if username != "" {
			c.Username = username
		}
		if password != "" {
			c.Password = password
		}
	}
}

func WithLogger(log Logger) Option {
	return func(c *Config) {
		c.Logger = log
	}
}
