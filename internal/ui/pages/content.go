// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package pages

import "github.com/mintzukunft/mintelligent-tui/internal/locale"

// Page bodies. German is the authoritative text; the English versions are
// summaries, and the legal pages say so explicitly.

var aboutContent = map[locale.Language]string{
	locale.LangGerman: `# Über MINT Zukunft schaffen e.V.

Philosophie, Handlungsschwerpunkte, Vereinsziele und Strukturen.

## Philosophie

Der Wirtschaftsstandort Deutschland ist gefährdet durch den Mangel an
Nachwuchs in den MINT-Qualifikationen (Mathematik, Informatik,
Naturwissenschaften und Technik). Der Engpass an
naturwissenschaftlich-technisch qualifizierten Fachkräften ist ein
strukturelles Problem, das schon heute als Wachstums- und Innovationsbremse
einen hohen Wertschöpfungsverlust für die deutsche Volkswirtschaft
verursacht – mit steigender Tendenz.

MINT-Fachkräfte-Engpässe gibt es sowohl im akademischen Bereich als auch
insbesondere im Bereich der qualifizierten MINT-Fachkräfte mit
abgeschlossener Berufsausbildung. Neben der Bedeutung der MINT-Bildung für
die eigene berufliche Entwicklung bildet sie auch die Grundlage für die
Teilhabe an unserer von Wissenschaft und Technik geprägten Welt im Sinne
einer umfassenden Chancengerechtigkeit.

„MINT Zukunft schaffen!" will profiliert zu einer positiven Einstellung von
jungen Menschen, Eltern, Lehrkräften sowie einer breiten Öffentlichkeit zu
MINT beitragen. Die Hauptzielgruppen sind einerseits Schülerinnen und
Schüler aller Altersklassen, andererseits Studienanfängerinnen und
-anfänger sowie Studierende.

## Handlungsschwerpunkte

Die Nationale Initiative „MINT Zukunft schaffen!" hat den Schwerpunkt,
Schülerinnen und Schüler für MINT zu begeistern und Schulen im Bereich MINT
zu motivieren, fördern und auszuzeichnen. Kernprogramme sind
**„MINT-freundliche Schule"** und **„Digitale Schule"**.

Weitere Ziele sind die Erhöhung der Zahl der Studienanfänger:innen in
MINT-Studiengängen – insbesondere des Frauenanteils – sowie die Sicherung
und Steigerung der Qualität der Absolvent:innen.

Weitere Aktivitäten sind unter anderem:

- monatliche Erhebung der MINT-Lücke und halbjährliches MINT-Reporting im
  Rahmen des MINT-Meters gemeinsam mit dem IW Köln,
- MINT-Awards für Studierende und ein Stipendium gemeinsam mit dem Förderer
  MLP,
- Konferenzen zur Vernetzung und Bündelung der MINT-Einzelinitiativen.

## Der Verein

Der Verein „MINT Zukunft e.V." ist ein eingetragener und gemeinnütziger
Verein. Alle Aktivitäten des Vereins laufen unter dem Namen „MINT Zukunft
schaffen!" und werden gemeinsam mit Mitgliedern, Förderern und Partnern in
ganz Deutschland umgesetzt.

## Netzwerk und Strukturen

Die Arbeit wird durch Gremien, Community und Arbeitsgruppen getragen:

- **Verein / Gremien:** Mitgliederversammlung, Vorstand, Kuratorium,
  Geschäftsstelle.
- **Community:** Förderer, Vereinsmitglieder, Kurator:innen,
  MINT-Botschafter:innen.
- **Arbeitsgruppen:** Partner der Ehrung „MINT-freundliche Schule",
  Projektgruppe „Digitale Schule", MINT-Botschafternetzwerk, AG Social
  Media und bundesweite Vernetzung.
`,
	locale.LangEnglish: `# About MINT Zukunft schaffen e.V.

Overview of the mission, focus areas and structure of MINT Zukunft
schaffen e.V.

## Philosophy

Germany faces a structural shortage of qualified STEM (MINT) professionals.
This shortage affects both university graduates and vocationally trained
specialists and is already slowing down innovation and economic growth.

STEM education is therefore key — both for individual careers and for equal
opportunities and democratic participation in a technology-driven society.

## Focus areas

The initiative aims to excite pupils about STEM, motivate and recognise
schools, increase the number of STEM students in higher education
(especially women), and improve the quality of STEM graduates.

Core programmes are **"MINT-freundliche Schule"** and **"Digitale
Schule"**, which support and recognise schools with a strong STEM or
digital profile.

## The association

MINT Zukunft e.V. is a registered, non-profit association. All activities
run under the name "MINT Zukunft schaffen!" and are implemented together
with members, supporters and partners throughout Germany.

## Network and structures

The initiative brings together stakeholders from schools, business, science
and civil society: members, supporters, ambassadors and several working
groups.
`,
}

var contactContent = map[locale.Language]string{
	locale.LangGerman: `# Kontakt

Hier kannst du später deine Kontaktdaten und Hinweise für Schulen eintragen.

Beispiel: E-Mail-Adresse, Ansprechpartner:in, Telefon, Link zum
Kontaktformular usw.
`,
	locale.LangEnglish: `# Contact

Here you can later add your contact details and information for schools.

Example: email address, contact person, phone number, link to a contact
form, etc.
`,
}

var impressumContent = map[locale.Language]string{
	locale.LangGerman: `# Impressum

## Diensteanbieter

MINT Zukunft e.V.

c/o Factory Works GmbH
Rheinsbergerstr. 76/77
10115 Berlin
Deutschland

## Kontaktmöglichkeiten

E-Mail-Adresse: info@mintzukunftschaffen.de
Telefon: +49 30 21230-828

## Vertretungsberechtigte Personen

Vertretungsberechtigt: Prof. Dr. Christoph Meinel (Vorstandsvorsitzender),
Benjamin Gesing (Vorstand und Geschäftsführer)

## Journalistisch-redaktionelle Angebote

Inhaltlich verantwortlich: Benjamin Gesing

## Register und Registernummer

Geführt bei: Vereinsregister Amtsgericht Charlottenburg
Nummer: 27594 B

## Haftungs- und Schutzrechtshinweise

Haftungsausschluss: Die Inhalte dieses Onlineangebotes wurden sorgfältig
und nach unserem aktuellen Kenntnisstand erstellt, dienen jedoch nur der
Information und entfalten keine rechtlich bindende Wirkung, sofern es sich
nicht um gesetzlich verpflichtende Informationen handelt.

Links auf fremde Webseiten: Die Inhalte fremder Webseiten, auf die wir
direkt oder indirekt verweisen, liegen außerhalb unseres
Verantwortungsbereiches und wir machen sie uns nicht zu Eigen.

Urheberrechte und Markenrechte: Alle dargestellten Inhalte sind durch die
jeweiligen Schutzrechte geschützt.

Hinweise auf Rechtsverstöße: Sollten Sie Rechtsverstöße bemerken, bitten
wir Sie, uns auf diese hinzuweisen. Wir werden rechtswidrige Inhalte und
Links nach Kenntnisnahme unverzüglich entfernen.
`,
	locale.LangEnglish: `# Legal notice

## Service provider

MINT Zukunft e.V.
c/o Factory Works GmbH
Rheinsbergerstr. 76/77
10115 Berlin
Germany

Email: info@mintzukunftschaffen.de
Phone: +49 30 21230-828

## Represented by

Prof. Dr. Christoph Meinel (Chairman of the Board),
Benjamin Gesing (Board member and Managing Director)

Further details, liability and copyright notes correspond to the German
version of the legal notice. In case of doubt,
only the German original text is legally binding.
`,
}

var datenschutzContent = map[locale.Language]string{
	locale.LangGerman: `# Datenschutzhinweise

Informationen zum Datenschutz im Rahmen der Zusammenarbeit mit MINT
Zukunft e. V.

## Ziel des Datenschutzes

Ziel des Datenschutzes ist es, jede einzelne Person davor zu schützen, dass
ihre Persönlichkeitsrechte durch den Umgang mit ihren personenbezogenen
Daten beeinträchtigt werden. Unter personenbezogenen Daten versteht man
alle Informationen, die sich auf eine identifizierte oder identifizierbare
natürliche Person beziehen.

## Verarbeitung personenbezogener Daten

Unter „Verarbeitung" versteht man jeden Vorgang im Umgang mit
personenbezogenen Daten – unabhängig davon, ob dies automatisiert oder
manuell erfolgt. Dazu zählen insbesondere das Erheben, Speichern, Ordnen,
Verändern, Auslesen, Verwenden, Übermitteln sowie das Löschen und
Vernichten von Daten.

## Verpflichtung zur Wahrung des Datengeheimnisses

Alle personenbezogenen Informationen, die du im Rahmen der Zusammenarbeit
mit MINT Zukunft e. V. erhältst, sind vertraulich zu behandeln. Diese
Verpflichtung gilt auch über das Ende der Zusammenarbeit hinaus.

## Technische und organisatorische Maßnahmen

- Zugang zu Geräten und Programmen nur mit persönlichem Benutzerkonto und
  Passwort.
- Datenträger und Unterlagen mit personenbezogenen Daten so aufbewahren,
  dass Dritte keinen Zugriff haben.
- Nur die Daten speichern, die für die jeweilige Aufgabe erforderlich sind;
  nicht mehr benötigte Daten sicher löschen.
- Programme, Browser und Virenschutz regelmäßig aktualisieren.
- Werden besonders schutzbedürftige Daten auf privaten Geräten gespeichert,
  müssen diese verschlüsselt sein und die Speicherung ist vorab mit MINT
  Zukunft e. V. abzustimmen.

## Ansprechpartner für Datenschutzfragen

**MINT Zukunft e. V.**
c/o Factory Works GmbH
Rheinsberger Str. 76/77
10115 Berlin
E-Mail: benjamin.gesing@mintzukunftschaffen.de

Hinweis: Diese Seite stellt eine verständliche Zusammenfassung der internen
Datenschutzhinweise dar und ersetzt keine rechtsverbindliche
Datenschutzerklärung im Sinne der DSGVO.
`,
	locale.LangEnglish: `# Privacy Information

Summary of data protection information for collaboration with MINT
Zukunft e. V.

## Purpose of data protection

The aim of data protection is to protect every individual from having their
personal rights infringed by the handling of their personal data. Personal
data is any information relating to an identified or identifiable person.

## Processing of personal data

Processing includes any operation performed on personal data, regardless of
whether it is automated or not — in particular collection, storage,
organisation, modification, access, transmission, use, deletion and
destruction of data.

## Confidentiality obligation

All personal information that you receive in the context of collaboration
with MINT Zukunft e. V. must be treated confidentially. The obligation to
maintain data secrecy continues even after the end of the collaboration.

## Technical and organisational measures

- Use user accounts and passwords and keep them secret.
- Keep devices and media with personal data locked away.
- Only store data that you really need for your work and delete data that
  is no longer required in a secure way.
- Keep software (programs, browser, virus protection, firewall) up to date.
- If personal data is stored on private devices, it must be encrypted and
  agreed with MINT Zukunft e. V. in advance.

## Contact for questions

If you have questions regarding data protection in the context of MINT
Zukunft e. V., please contact the MINT Zukunft office.
`,
}
