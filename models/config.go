package models

import (
	"sync"

	"github.com/CPU-commits/Intranet_BRegistration/db"
	"github.com/CPU-commits/Intranet_BRegistration/settings"
)

var settingsData = settings.GetSettings()

var dbLock = &sync.Mutex{}
var dbConn *db.MongoConn

// DbConnect opens the MongoDB connection on first use. Client-side
// consumers of the shared types never touch it.
func DbConnect() *db.MongoConn {
	if dbConn == nil {
		dbLock.Lock()
		defer dbLock.Unlock()
		if dbConn == nil {
			dbConn = db.NewConnection(
				settingsData.MONGO_HOST,
				settingsData.MONGO_DB,
			)
		}
	}
	return dbConn
}
