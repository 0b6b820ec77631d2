package main

// timeHelp documents the bucketing applied to reported hold seconds
// under the -full-time and -offset-time flags.
const timeHelp = `Hold times are only reported if the button is held more than 0.4 seconds.
By default button-daemon reports only odd seconds as follows:
	+--------------------------------+
	|      | Upto but not | reported |
	| From |  including   | seconds  |
	|------+--------------+----------|
	|  0.4 |      3       |    1     |
	|  3   |      5       |    3     |
	|  5   |      7       |    5     |
	+--------------------------------+


if -offset-time is specified the seconds are reported as:
	+--------------------------------+
	|      | Upto but not | reported |
	| From |  including   | seconds  |
	|------+--------------+----------|
	|  0.4 |     2        |    1     |
	|   2  |     4        |    3     |
	|   4  |     6        |    5     |
	|   6  |     8        |    7     |
	+--------------------------------+


if -full-time is specified the seconds are reported as:
	+--------------------------------+
	|      | Upto but not | reported |
	| From |  including   | seconds  |
	|------+--------------+----------|
	|  0.4 |      1       |    0     |
	|  1   |      2       |    1     |
	|  2   |      3       |    2     |
	|  3   |      4       |    3     |
	+--------------------------------+


if -full-time and -offset-time is specified the seconds are reported as:
	+--------------------------------+
	|      | Upto but not | reported |
	| From |  including   | seconds  |
	|------+--------------+----------|
	|  0.4 |     0.5      |    0     |
	|  0.5 |     1.5      |    1     |
	|  1.5 |     2.5      |    2     |
	|  2.5 |     3.5      |    3     |
	+--------------------------------+
`
