// seehuhn.de/go/glyphkit - batch transformations for font glyph sets
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package afii

// table maps AFII glyph names to Unicode code points.
var table = map[string]rune{
	// Cyrillic
	"afii10017": 0x0410,
	"afii10018": 0x0411,
	"afii10019": 0x0412,
	"afii10020": 0x0413,
	"afii10021": 0x0414,
	"afii10022": 0x0415,
	"afii10023": 0x0401,
	"afii10024": 0x0416,
	"afii10025": 0x0417,
	"afii10026": 0x0418,
	"afii10027": 0x0419,
	"afii10028": 0x041A,
	"afii10029": 0x041B,
	"afii10030": 0x041C,
	"afii10031": 0x041D,
	"afii10032": 0x041E,
	"afii10033": 0x041F,
	"afii10034": 0x0420,
	"afii10035": 0x0421,
	"afii10036": 0x0422,
	"afii10037": 0x0423,
	"afii10038": 0x0424,
	"afii10039": 0x0425,
	"afii10040": 0x0426,
	"afii10041": 0x0427,
	"afii10042": 0x0428,
	"afii10043": 0x0429,
	"afii10044": 0x042A,
	"afii10045": 0x042B,
	"afii10046": 0x042C,
	"afii10047": 0x042D,
	"afii10048": 0x042E,
	"afii10049": 0x042F,
	"afii10065": 0x0430,
	"afii10066": 0x0431,
	"afii10067": 0x0432,
	"afii10068": 0x0433,
	"afii10069": 0x0434,
	"afii10070": 0x0435,
	"afii10071": 0x0451,
	"afii10072": 0x0436,
	"afii10073": 0x0437,
	"afii10074": 0x0438,
	"afii10075": 0x0439,
	"afii10076": 0x043A,
	"afii10077": 0x043B,
	"afii10078": 0x043C,
	"afii10079": 0x043D,
	"afii10080": 0x043E,
	"afii10081": 0x043F,
	"afii10082": 0x0440,
	"afii10083": 0x0441,
	"afii10084": 0x0442,
	"afii10085": 0x0443,
	"afii10086": 0x0444,
	"afii10087": 0x0445,
	"afii10088": 0x0446,
	"afii10089": 0x0447,
	"afii10090": 0x0448,
	"afii10091": 0x0449,
	"afii10092": 0x044A,
	"afii10093": 0x044B,
	"afii10094": 0x044C,
	"afii10095": 0x044D,
	"afii10096": 0x044E,
	"afii10097": 0x044F,
	"afii10050": 0x0490,
	"afii10098": 0x0491,
	"afii10051": 0x0402,
	"afii10052": 0x0403,
	"afii10053": 0x0404,
	"afii10054": 0x0405,
	"afii10055": 0x0406,
	"afii10056": 0x0407,
	"afii10057": 0x0408,
	"afii10058": 0x0409,
	"afii10059": 0x040A,
	"afii10060": 0x040B,
	"afii10061": 0x040C,
	"afii10062": 0x040E,
	"afii10145": 0x040F,
	"afii10099": 0x0452,
	"afii10100": 0x0453,
	"afii10101": 0x0454,
	"afii10102": 0x0455,
	"afii10103": 0x0456,
	"afii10104": 0x0457,
	"afii10105": 0x0458,
	"afii10106": 0x0459,
	"afii10107": 0x045A,
	"afii10108": 0x045B,
	"afii10109": 0x045C,
	"afii10110": 0x045E,
	"afii10193": 0x045F,
	"afii10146": 0x0462,
	"afii10194": 0x0463,
	"afii10147": 0x0472,
	"afii10195": 0x0473,
	"afii10148": 0x0474,
	"afii10196": 0x0475,

	// Hebrew
	"afii57664": 0x05D0,
	"afii57665": 0x05D1,
	"afii57666": 0x05D2,
	"afii57667": 0x05D3,
	"afii57668": 0x05D4,
	"afii57669": 0x05D5,
	"afii57670": 0x05D6,
	"afii57671": 0x05D7,
	"afii57672": 0x05D8,
	"afii57673": 0x05D9,
	"afii57674": 0x05DA,
	"afii57675": 0x05DB,
	"afii57676": 0x05DC,
	"afii57677": 0x05DD,
	"afii57678": 0x05DE,
	"afii57679": 0x05DF,
	"afii57680": 0x05E0,
	"afii57681": 0x05E1,
	"afii57682": 0x05E2,
	"afii57683": 0x05E3,
	"afii57684": 0x05E4,
	"afii57685": 0x05E5,
	"afii57686": 0x05E6,
	"afii57687": 0x05E7,
	"afii57688": 0x05E8,
	"afii57689": 0x05E9,
	"afii57690": 0x05EA,

	// Greek
	"afii57595": 0x0391,
	"afii57596": 0x0392,
	"afii57597": 0x0393,
	"afii57598": 0x0394,
	"afii57599": 0x0395,
	"afii57600": 0x0396,
	"afii57601": 0x0397,
	"afii57602": 0x0398,
	"afii57603": 0x0399,
	"afii57604": 0x039A,
	"afii57605": 0x039B,
	"afii57606": 0x039C,
	"afii57607": 0x039D,
	"afii57608": 0x039E,
	"afii57609": 0x039F,
	"afii57610": 0x03A0,
	"afii57611": 0x03A1,
	"afii57612": 0x03A3,
	"afii57613": 0x03A4,
	"afii57614": 0x03A5,
	"afii57615": 0x03A6,
	"afii57616": 0x03A7,
	"afii57617": 0x03A8,
	"afii57618": 0x03A9,
	"afii57619": 0x03B1,
	"afii57620": 0x03B2,
	"afii57621": 0x03B3,
	"afii57622": 0x03B4,
	"afii57623": 0x03B5,
	"afii57624": 0x03B6,
	"afii57625": 0x03B7,
	"afii57626": 0x03B8,
	"afii57627": 0x03B9,
	"afii57628": 0x03BA,
	"afii57629": 0x03BB,
	"afii57630": 0x03BC,
	"afii57631": 0x03BD,
	"afii57632": 0x03BE,
	"afii57633": 0x03BF,
	"afii57634": 0x03C0,
	"afii57635": 0x03C1,
	"afii57636": 0x03C2,
	"afii57637": 0x03C3,
	"afii57638": 0x03C4,
	"afii57639": 0x03C5,
	"afii57640": 0x03C6,
	"afii57641": 0x03C7,
	"afii57642": 0x03C8,
	"afii57643": 0x03C9,

	// Arabic punctuation and currency
	"afii61664": 0x060C,
	"afii61573": 0x061B,
	"afii61574": 0x061F,
	"afii08941": 0x20A4,
}
