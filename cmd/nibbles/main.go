// Copyright (C) 2018 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// nibbles inspects streams of nibble-packed values as produced by the
// log compressor: the packed nibble codes first, the value bytes after.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/jodzga/NanoLog/core/data/pack"
)

func main() {
	app := cli.NewApp()
	app.Name = "nibbles"
	app.Usage = "inspect nibble-packed value streams"
	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "verbose", Usage: "enable debug logging"},
	}
	app.Before = func(c *cli.Context) error {
		if c.GlobalBool("verbose") {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return nil
	}
	app.Commands = []cli.Command{cmdDump, cmdSize}
	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

var streamFlags = []cli.Flag{
	cli.IntFlag{Name: "count", Usage: "number of nibble codes in the stream"},
	cli.StringFlag{Name: "hex", Usage: "stream given as a hex string instead of a file"},
}

var cmdDump = cli.Command{
	Name:      "dump",
	Usage:     "print each packed value's code, width and integer interpretation",
	ArgsUsage: "[stream file]",
	Description: "The stream carries no type information, so every value is " +
		"shown as an integer: unsigned, or negated when its code says the " +
		"encoder negated it. Floating-point values appear as their raw bits.",
	Flags:  streamFlags,
	Action: dump,
}

var cmdSize = cli.Command{
	Name:      "size",
	Usage:     "print the byte extent the stream's nibble codes describe",
	ArgsUsage: "[stream file]",
	Flags:     streamFlags,
	Action:    size,
}

// readStream loads the stream bytes and checks they cover the extent the
// nibble codes describe.
func readStream(c *cli.Context) ([]byte, int, error) {
	count := c.Int("count")
	if count <= 0 {
		return nil, 0, errors.New("--count must be positive")
	}
	var data []byte
	if h := c.String("hex"); h != "" {
		var err error
		data, err = hex.DecodeString(strings.TrimSpace(h))
		if err != nil {
			return nil, 0, errors.Wrap(err, "decoding --hex")
		}
	} else {
		path := c.Args().First()
		if path == "" {
			return nil, 0, errors.New("a stream file or --hex is required")
		}
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, 0, errors.Wrap(err, "reading stream")
		}
	}
	logrus.Debugf("read %d stream bytes", len(data))
	codeBytes := (count + 1) / 2
	if len(data) < codeBytes {
		return nil, 0, errors.Errorf(
			"stream holds %d bytes, %d codes need at least %d",
			len(data), count, codeBytes)
	}
	if total := codeBytes + pack.SizeOfPackedRun(data, count); len(data) < total {
		return nil, 0, errors.Errorf(
			"stream holds %d bytes but its %d codes describe %d",
			len(data), count, total)
	}
	return data, count, nil
}

func dump(c *cli.Context) error {
	data, count, err := readStream(c)
	if err != nil {
		return err
	}
	buf := pack.Buffer{Data: data, ReadPos: (count + 1) / 2}
	for i := 0; i < count; i++ {
		first, second := pack.SplitPair(data[i/2])
		code := first
		if i%2 == 1 {
			code = second
		}
		offset := buf.ReadPos
		if code.Negated() {
			fmt.Printf("%4d  code=%2d  width=%2d  offset=%4d  value=%d\n",
				i, code, code.PackedBytes(), offset, buf.UnpackInt64(code))
		} else {
			fmt.Printf("%4d  code=%2d  width=%2d  offset=%4d  value=%d\n",
				i, code, code.PackedBytes(), offset, buf.UnpackUint64(code))
		}
	}
	return nil
}

func size(c *cli.Context) error {
	data, count, err := readStream(c)
	if err != nil {
		return err
	}
	codeBytes := (count + 1) / 2
	valueBytes := pack.SizeOfPackedRun(data, count)
	fmt.Printf("codes=%d code bytes=%d value bytes=%d total=%d\n",
		count, codeBytes, valueBytes, codeBytes+valueBytes)
	return nil
}
