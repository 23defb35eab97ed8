package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/peterbourgon/ff"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/orthodrome/latlon"
	"github.com/a-bouts/orthodrome/orthodrome"
)

func main() {

	fs := flag.NewFlagSet("orthodrome", flag.ExitOnError)
	var (
		fromLat    = fs.Float64("from-lat", -33.0, "departure latitude, degrees north")
		fromLon    = fs.Float64("from-lon", -71.6, "departure longitude, degrees east")
		toLat      = fs.Float64("to-lat", 31.4, "destination latitude, degrees north")
		toLon      = fs.Float64("to-lon", 121.8, "destination longitude, degrees east")
		decimals   = fs.Int("decimals", 2, "decimals in printed angles")
		debug      = fs.Bool("debug", false, "log the ascending-node parameters")
		cpuprofile = fs.Bool("cpuprofile", false, "write a cpu profile of the computation")
	)
	ff.Parse(fs, os.Args[1:], ff.WithEnvVarNoPrefix())

	if *debug {
		log.SetLevel(log.DebugLevel)
	}
	if *cpuprofile {
		defer profile.Start().Stop()
	}

	from, err := latlon.New(*fromLat, *fromLon)
	if err != nil {
		log.Fatal(err)
	}
	to, err := latlon.New(*toLat, *toLon)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("From", from.Format(*decimals), "-", from.FormatDMS())
	fmt.Println("To  ", to.Format(*decimals), "-", to.FormatDMS())
	fmt.Println("Antipode of departure", from.Antipode().Format(*decimals))

	path, angle, err := orthodrome.Between(from, to)
	if err != nil {
		log.Fatal(err)
	}

	log.WithFields(log.Fields{
		"azimuth":   path.NodeAzimuth(),
		"longitude": path.NodeLongitude(),
		"angle":     path.NodeAngle(),
	}).Debug("ascending node")

	fmt.Printf("Path %s, central angle %.*f°\n", path.Format(*decimals), *decimals, angle)

	land, azimuth := path.Displace(angle)
	fmt.Printf("Displacing by %.*f° lands at %s heading %.*f°\n",
		*decimals, angle, land.Format(*decimals), *decimals, azimuth)

	half, _ := path.Displace(angle / 2)
	fmt.Println("Halfway point", half.Format(*decimals), "-", half.FormatDMS())
}
