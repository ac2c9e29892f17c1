package binsort

// Config holds configuration settings for the channel based sorters
type Config struct {
	ChanBuffSize       int // buffer size for records read but not yet inserted
	SortedChanBuffSize int // buffer size for passing records to output
	InitialCapacity    int // initial capacity of the in-memory sorted buffer
}

// DefaultConfig returns the default configuration options used if none provided
func DefaultConfig() *Config {
	return &Config{
		ChanBuffSize:       64,
		SortedChanBuffSize: 10,
		InitialCapacity:    1024,
	}
}

// mergeConfig takes a provided config and replaces any values not set with the defaults
func mergeConfig(c *Config) *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	if c.ChanBuffSize < 0 {
		c.ChanBuffSize = d.ChanBuffSize
	}
	if c.SortedChanBuffSize < 0 {
		c.SortedChanBuffSize = d.SortedChanBuffSize
	}
	if c.InitialCapacity <= 0 {
		c.InitialCapacity = d.InitialCapacity
	}
	return c
}
