package main

import (
	"github.com/google/wire"
	"github.com/pandodao/carbon-wallet/store/db"
	"github.com/pandodao/carbon-wallet/store/property"
	"github.com/spf13/viper"
	"github.com/tsenart/nap"
)

var storeSet = wire.NewSet(
	provideDB,
	property.New,
)

func provideDB(v *viper.Viper) (*nap.DB, func(), error) {
	v.SetDefault("db.dsn", "carbon-wallet.db")

	conn, err := db.Open(v.GetString("db.dsn"))
	if err != nil {
		return nil, nil, err
	}

	return conn, func() { _ = conn.Close() }, nil
}
