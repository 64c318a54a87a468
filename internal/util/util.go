package util

import (
	"crypto/rand"
	"math/big"
	"net"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/nats-io/nuid"
	"github.com/pkg/errors"
	hashids "github.com/speps/go-hashids"
)

//
// generate a short useful unique name - hashid in this case
//
func GenerateName() string {

	name := "converter"

	// generate a random number
	number0, err := rand.Int(rand.Reader, big.NewInt(10000000))
	if err != nil {
		log.Warn("error generating random name seed: ", err)
		return name
	}

	hd := hashids.NewData()
	hd.Salt = "otf-convert random name generator 2021"
	hd.MinLength = 5
	h, err := hashids.NewWithData(hd)
	if err != nil {
		log.Warn("error auto-generating name: ", err)
		return name
	}
	e, err := h.EncodeInt64([]int64{number0.Int64()})
	if err != nil {
		log.Warn("error encoding auto-generated name: ", err)
		return name
	}
	name = e

	return name

}

//
// generate a unique id - nuid in this case
//
func GenerateID() string {

	return nuid.Next()

}

//
// small utility function embedded in major ops
// to print a performance indicator.
//
func TimeTrack(logger echo.Logger, start time.Time, name string) {
	elapsed := time.Since(start)
	logger.Debugf("%s took %s", name, elapsed.Truncate(time.Microsecond).String())
}

//
// find an available tcp port
//
func AvailablePort() (int, error) {

	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		return 0, errors.Wrap(err, "cannot acquire a tcp port")
	}
	defer listener.Close()

	return listener.Addr().(*net.TCPAddr).Port, nil

}

//
// map a level name onto a gommon log level
//
func ParseLogLevel(name string) (log.Lvl, error) {
	switch name {
	case "debug":
		return log.DEBUG, nil
	case "", "info":
		return log.INFO, nil
	case "warn":
		return log.WARN, nil
	case "error":
		return log.ERROR, nil
	case "off":
		return log.OFF, nil
	}
	return 0, errors.Errorf("unknown log level %q", name)
}
