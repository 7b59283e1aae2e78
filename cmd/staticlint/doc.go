/*
Package main builds the staticlint multichecker used to vet this repository.

It bundles:

  - a curated subset of the analyzers from "golang.org/x/tools/go/analysis/passes";

  - every SA analyzer from "honnef.co/go/tools/staticcheck" and every ST analyzer from "honnef.co/go/tools/stylecheck";

  - "github.com/orijtech/httperroryzer", which catches http.Error calls that are not followed by a return;

  - "github.com/gostaticanalysis/forcetypeassert", which catches unchecked type assertions;

  - the local osexit analyzer, which forbids direct os.Exit calls in main functions. Use flag -osexit to control it.

Build the binary from cmd/staticlint with go build, then run it against the packages to analyze:

	staticlint ./...
*/
package main
