package main

import (
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/ceod-api/consts"
	"github.com/bitmark-inc/ceod-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("ceod")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	switch driver := viper.GetString("store.driver"); driver {
	case consts.StoreDriverORM:
		migrateORM()
	case consts.StoreDriverMongo, "":
		migrateMongo()
	default:
		panic(fmt.Sprintf("unknown store driver: %s", driver))
	}
}

func migrateORM() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}
	defer db.Close()

	if err := db.AutoMigrate(&schema.SurveyRecord{}).Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.SurveyRecord{}).
		AddIndex("ceod_results_location", "city", "neighborhood").Error; err != nil {
		panic(err)
	}

	fmt.Println("table `ceod_results` migrated")
}

func migrateMongo() {
	indexer := schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database"))
	defer indexer.Close()

	indexer.IndexAll()
	fmt.Println("collection `ceodResults` indexed")
}
