package otfconvert

import (
	"github.com/labstack/gommon/log"
	"github.com/nsip/otf-convert/internal/util"
	"github.com/pkg/errors"
)

type Option func(*OtfConvertService) error

//
// apply all supplied options to the service
// returns any error encountered while applying options
//
func (srvc *OtfConvertService) setOptions(options ...Option) error {
	for _, opt := range options {
		if err := opt(srvc); err != nil {
			return err
		}
	}
	return nil
}

//
// create a name for this service instance,
// if blank a hashid name will be generated
//
func Name(name string) Option {
	return func(s *OtfConvertService) error {
		if name != "" {
			s.serviceName = name
			return nil
		}
		s.serviceName = util.GenerateName()
		return nil
	}
}

//
// set the unique id for this service instance,
// if blank a nuid will be generated
//
func ID(id string) Option {
	return func(s *OtfConvertService) error {
		if id != "" {
			s.serviceID = id
			return nil
		}
		s.serviceID = util.GenerateID()
		return nil
	}
}

//
// the hostname/address for this service
//
func Host(hostName string) Option {
	return func(s *OtfConvertService) error {
		if hostName == "" {
			return errors.New("host cannot be blank")
		}
		s.serviceHost = hostName
		return nil
	}
}

//
// the port to run this service on,
// if 0 an available port will be found
//
func Port(port int) Option {
	return func(s *OtfConvertService) error {
		if port < 0 {
			return errors.Errorf("invalid port %d", port)
		}
		if port != 0 {
			s.servicePort = port
			return nil
		}
		p, err := util.AvailablePort()
		if err != nil {
			return errors.Wrap(err, "unable to assign a port")
		}
		s.servicePort = p
		return nil
	}
}

//
// logging level for the service,
// one of debug|info|warn|error|off
//
func LogLevel(level string) Option {
	return func(s *OtfConvertService) error {
		lvl, err := util.ParseLogLevel(level)
		if err != nil {
			return err
		}
		s.logLevel = lvl
		return nil
	}
}

func defaultLogLevel() log.Lvl {
	return log.INFO
}
